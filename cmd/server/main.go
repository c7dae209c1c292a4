package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mcoot/diamondstats/internal/api"
	"github.com/mcoot/diamondstats/internal/config"
	"github.com/mcoot/diamondstats/internal/factory"
)

// initialLoadTimeout bounds the startup roster fetch
const initialLoadTimeout = 2 * time.Minute

func main() {
	// A missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(cfg.Factory(logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close application", slog.String("error", err.Error()))
		}
	}()

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Build the player index in the background; search answers 503 until the
	// first load succeeds
	go app.PlayerIndex.Start(ctx, initialLoadTimeout, cfg.Roster.RefreshInterval)

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		PlayerIndex:  app.PlayerIndex,
		StatsService: app.StatsService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(api.WithCORS(apiRouter, cfg.Server.CORSAllowedOrigins), serverConfig, logger)

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
