package handler

import (
	"net/http"

	"github.com/mcoot/diamondstats/internal/api/request"
	"github.com/mcoot/diamondstats/internal/api/response"
	"github.com/mcoot/diamondstats/internal/model"
	"github.com/mcoot/diamondstats/internal/services/stats"
)

// StatsHandler handles the statistics passthrough endpoints
type StatsHandler struct {
	stats *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		stats: statsService,
	}
}

// Batting handles GET /api/player/batting/{playerId}
func (h *StatsHandler) Batting(w http.ResponseWriter, r *http.Request) {
	playerID, ok := request.PlayerID(r)
	if !ok {
		WriteError(w, NewInvalidRequestError("invalid player id"))
		return
	}

	start, end, err := h.stats.DateRange(request.Query(r, "start_date"), request.Query(r, "end_date"))
	if err != nil {
		WriteError(w, err)
		return
	}

	rows, err := h.stats.BatterEvents(r.Context(), playerID, start, end)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// Pitching handles GET /api/player/pitching/{playerId}
func (h *StatsHandler) Pitching(w http.ResponseWriter, r *http.Request) {
	playerID, ok := request.PlayerID(r)
	if !ok {
		WriteError(w, NewInvalidRequestError("invalid player id"))
		return
	}

	start, end, err := h.stats.DateRange(request.Query(r, "start_date"), request.Query(r, "end_date"))
	if err != nil {
		WriteError(w, err)
		return
	}

	rows, err := h.stats.PitcherEvents(r.Context(), playerID, start, end)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// Standings handles GET /api/standings
func (h *StatsHandler) Standings(w http.ResponseWriter, r *http.Request) {
	year := h.stats.Season(request.Query(r, "year"))

	divisions, err := h.stats.Standings(r.Context(), year)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, divisions)
}

// TeamSchedule handles GET /api/team/schedule/{teamAbbrev}
func (h *StatsHandler) TeamSchedule(w http.ResponseWriter, r *http.Request) {
	team := request.Team(r)
	if team == "" {
		WriteError(w, NewInvalidRequestError("team abbreviation is required"))
		return
	}
	year := h.stats.Season(request.Query(r, "year"))

	rows, err := h.stats.TeamSchedule(r.Context(), year, team)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// SeasonStats handles GET /api/player/season-stats
func (h *StatsHandler) SeasonStats(w http.ResponseWriter, r *http.Request) {
	statType, err := model.ParseStatType(request.Query(r, "type"))
	if err != nil {
		WriteError(w, err)
		return
	}
	year := h.stats.Season(request.Query(r, "year"))

	rows, err := h.stats.SeasonStats(r.Context(), statType, year)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// PercentileRankings handles GET /api/player/percentile-rankings/{playerId}
func (h *StatsHandler) PercentileRankings(w http.ResponseWriter, r *http.Request) {
	playerID, ok := request.PlayerID(r)
	if !ok {
		WriteError(w, NewInvalidRequestError("invalid player id"))
		return
	}

	playerType, err := model.ParsePlayerType(request.Query(r, "type"))
	if err != nil {
		WriteError(w, err)
		return
	}
	year := h.stats.Season(request.Query(r, "year"))

	rows, err := h.stats.PercentileRankings(r.Context(), playerID, playerType, year)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}
