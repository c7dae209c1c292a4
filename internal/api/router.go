package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/diamondstats/internal/api/apierr"
	"github.com/mcoot/diamondstats/internal/api/handler"
	"github.com/mcoot/diamondstats/internal/middleware"
	"github.com/mcoot/diamondstats/internal/services/playerindex"
	"github.com/mcoot/diamondstats/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	PlayerIndex  *playerindex.Service
	StatsService *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerIndex)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)
	systemHandler := handler.NewSystemHandler(cfg.StatsService, cfg.PlayerIndex, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestID())
	api.Use(middleware.Recovery(cfg.Logger, writePanic))
	api.Use(middleware.Logging(cfg.Logger))

	// Player search
	api.HandleFunc("/players/search", playerHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/players/index", playerHandler.IndexStatus).Methods(http.MethodGet)

	// Statistics
	api.HandleFunc("/player/batting/{playerId:[0-9]+}", statsHandler.Batting).Methods(http.MethodGet)
	api.HandleFunc("/player/pitching/{playerId:[0-9]+}", statsHandler.Pitching).Methods(http.MethodGet)
	api.HandleFunc("/player/season-stats", statsHandler.SeasonStats).Methods(http.MethodGet)
	api.HandleFunc("/player/percentile-rankings/{playerId:[0-9]+}", statsHandler.PercentileRankings).Methods(http.MethodGet)
	api.HandleFunc("/standings", statsHandler.Standings).Methods(http.MethodGet)
	api.HandleFunc("/team/schedule/{teamAbbrev}", statsHandler.TeamSchedule).Methods(http.MethodGet)

	// Maintenance
	api.HandleFunc("/cache/clear", systemHandler.ClearCache).Methods(http.MethodPost)
	api.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)

	return r
}

// writePanic answers a recovered panic with the standard error envelope. The
// panic value is logged by the middleware and never sent to the client.
func writePanic(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
