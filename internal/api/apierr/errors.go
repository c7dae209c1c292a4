package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/diamondstats/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidStatType   = "INVALID_STAT_TYPE"
	CodeInvalidPlayerType = "INVALID_PLAYER_TYPE"
	CodeInvalidDate       = "INVALID_DATE"
	CodeQueryTooShort     = "QUERY_TOO_SHORT"
	CodeNotFound          = "NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeIndexNotReady     = "INDEX_NOT_READY"
	CodeUpstreamError     = "UPSTREAM_ERROR"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError.
// Messages carry the underlying error text so callers can see what failed upstream.
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Validation errors
	case errors.Is(err, model.ErrQueryTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodeQueryTooShort, err.Error()}}
	case errors.Is(err, model.ErrInvalidStatType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStatType, err.Error()}}
	case errors.Is(err, model.ErrInvalidPlayerType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayerType, err.Error()}}
	case errors.Is(err, model.ErrInvalidDate), errors.Is(err, model.ErrInvalidDateRange):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, err.Error()}}

	// Availability
	case errors.Is(err, model.ErrIndexNotReady):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeIndexNotReady, "Player search is unavailable: roster has not been loaded"}}

	// Downstream
	case errors.Is(err, model.ErrUpstream), errors.Is(err, model.ErrTableNotFound):
		return &httpError{http.StatusInternalServerError, APIError{CodeUpstreamError, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, err.Error()}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Resource not found"}}
}

// NewMethodNotAllowedError creates a method not allowed error
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
