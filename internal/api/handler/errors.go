package handler

import (
	"net/http"

	"github.com/mcoot/diamondstats/internal/api/apierr"
)

// WriteError writes the JSON error envelope for err
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError is a 400 for path values the router let through
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
