package handler

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/mcoot/diamondstats/internal/api/request"
	"github.com/mcoot/diamondstats/internal/api/response"
	"github.com/mcoot/diamondstats/internal/model"
	"github.com/mcoot/diamondstats/internal/services/playerindex"
)

// PlayerHandler handles player search endpoints
type PlayerHandler struct {
	index *playerindex.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(index *playerindex.Service) *PlayerHandler {
	return &PlayerHandler{
		index: index,
	}
}

// Search handles GET /api/players/search. The name is matched as sent;
// surrounding spaces are part of the substring.
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := request.RawQuery(r, "name")
	if utf8.RuneCountInString(name) < playerindex.MinQueryLength {
		WriteError(w, fmt.Errorf("%w: name must be at least %d characters", model.ErrQueryTooShort, playerindex.MinQueryLength))
		return
	}

	if !h.index.IsReady() {
		WriteError(w, model.ErrIndexNotReady)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(h.index.Search(name)))
}

// IndexStatus handles GET /api/players/index
func (h *PlayerHandler) IndexStatus(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.IndexStatusFromService(h.index.Status()))
}
