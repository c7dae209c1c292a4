package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/diamondstats/internal/model"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"query too short", model.ErrQueryTooShort, http.StatusBadRequest},
		{"stat type", fmt.Errorf("%w: soccer", model.ErrInvalidStatType), http.StatusBadRequest},
		{"player type", model.ErrInvalidPlayerType, http.StatusBadRequest},
		{"date", model.ErrInvalidDate, http.StatusBadRequest},
		{"date range", model.ErrInvalidDateRange, http.StatusBadRequest},
		{"index not ready", model.ErrIndexNotReady, http.StatusServiceUnavailable},
		{"upstream", fmt.Errorf("standings: %w", model.ErrUpstream), http.StatusInternalServerError},
		{"unknown", errors.New("something odd"), http.StatusInternalServerError},
		{"explicit", NewInvalidRequestError("bad"), http.StatusBadRequest},
		{"not found", NewNotFoundError(), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestWriteErrorIncludesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, fmt.Errorf("schedule XXX 2023: %w: status 404", model.ErrUpstream))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeUpstreamError, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "schedule XXX 2023")
}
