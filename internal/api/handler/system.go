package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/diamondstats/internal/api/response"
	"github.com/mcoot/diamondstats/internal/services/playerindex"
	"github.com/mcoot/diamondstats/internal/services/stats"
)

// SystemHandler handles cache management and health endpoints
type SystemHandler struct {
	stats  *stats.Service
	index  *playerindex.Service
	logger *slog.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(statsService *stats.Service, index *playerindex.Service, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		stats:  statsService,
		index:  index,
		logger: logger,
	}
}

// ClearCache handles POST /api/cache/clear
func (h *SystemHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.stats.ClearCache(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("response cache cleared")
	response.JSON(w, http.StatusOK, response.CacheCleared{
		Success: true,
		Message: "Cache cleared successfully",
	})
}

// Health handles GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{
		Status:     "ok",
		IndexReady: h.index.IsReady(),
	})
}
