package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/diamondstats/internal/cache"
	memorycache "github.com/mcoot/diamondstats/internal/cache/memory"
	rediscache "github.com/mcoot/diamondstats/internal/cache/redis"
	"github.com/mcoot/diamondstats/internal/dependencies/clock"
	"github.com/mcoot/diamondstats/internal/gateway"
	"github.com/mcoot/diamondstats/internal/services/playerindex"
	"github.com/mcoot/diamondstats/internal/services/stats"
)

// Cache type constants
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Response cache
	Cache cache.Cache

	// External dependencies
	Clock   clock.Clock
	Gateway gateway.Gateway

	// Services
	PlayerIndex  *playerindex.Service
	StatsService *stats.Service

	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// CacheType selects the response cache backend ("memory" or "redis")
	// If empty, defaults to "memory"
	CacheType string
	// MemoryMaxEntries caps the memory cache; zero means memory.DefaultMaxEntries
	MemoryMaxEntries int
	// RedisConfig holds Redis connection settings (required if CacheType is "redis")
	RedisConfig *rediscache.Config
	// GatewayConfig holds upstream settings
	// If zero value, defaults to gateway.DefaultConfig()
	GatewayConfig gateway.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	// Create cache based on type
	var (
		c      cache.Cache
		closer io.Closer
	)
	cacheType := cfg.CacheType
	if cacheType == "" {
		cacheType = CacheTypeMemory
	}

	switch cacheType {
	case CacheTypeMemory:
		c = memorycache.New(clk, memorycache.WithMaxEntries(cfg.MemoryMaxEntries))
	case CacheTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when CacheType is redis")
		}
		redisCache, err := rediscache.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		c = redisCache
		closer = redisCache
	default:
		return nil, errors.New("invalid CacheType: must be 'memory' or 'redis'")
	}

	// Use default gateway config if not provided
	gwCfg := cfg.GatewayConfig
	if gwCfg.SavantURL == "" {
		gwCfg = gateway.DefaultConfig()
	}

	app := newWithDependencies(c, gateway.New(gwCfg, c, logger), clk, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(c cache.Cache, gw gateway.Gateway, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Cache:        c,
		Clock:        clk,
		Gateway:      gw,
		PlayerIndex:  playerindex.New(gw, clk, logger),
		StatsService: stats.New(gw, clk, logger),
	}
}

// Close releases external connections held by the app
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
