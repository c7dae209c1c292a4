// Package config loads service settings from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	memorycache "github.com/mcoot/diamondstats/internal/cache/memory"
	rediscache "github.com/mcoot/diamondstats/internal/cache/redis"
	"github.com/mcoot/diamondstats/internal/factory"
	"github.com/mcoot/diamondstats/internal/gateway"
)

// Config aggregates every setting of the server
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Gateway  gateway.Config
	Roster   RosterConfig
	LogLevel slog.Level
}

// ServerConfig describes the HTTP listener
type ServerConfig struct {
	Port               int
	CORSAllowedOrigins []string
}

// CacheConfig selects the response cache backend
type CacheConfig struct {
	Type       string
	RedisURL   string
	MaxEntries int
}

// RosterConfig controls player index refreshing
type RosterConfig struct {
	RefreshInterval time.Duration
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	cacheCfg, err := loadCacheConfig()
	if err != nil {
		return nil, err
	}

	gw, err := loadGatewayConfig()
	if err != nil {
		return nil, err
	}

	refresh, err := durationEnv("ROSTER_REFRESH_INTERVAL", 0)
	if err != nil {
		return nil, err
	}

	level, err := logLevel()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Cache:    cacheCfg,
		Gateway:  gw,
		Roster:   RosterConfig{RefreshInterval: refresh},
		LogLevel: level,
	}, nil
}

// Factory converts the loaded settings into a factory configuration
func (c *Config) Factory(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		Logger:           logger,
		CacheType:        c.Cache.Type,
		MemoryMaxEntries: c.Cache.MaxEntries,
		GatewayConfig:    c.Gateway,
	}
	if c.Cache.Type == factory.CacheTypeRedis {
		redisCfg := rediscache.DefaultConfig()
		redisCfg.URL = c.Cache.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

func loadServerConfig() (ServerConfig, error) {
	port := 8080
	if raw := env("PORT"); raw != "" {
		p, err := strconv.Atoi(strings.TrimPrefix(raw, ":"))
		if err != nil || p <= 0 || p > 65535 {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", raw)
		}
		port = p
	}

	origins := []string{"*"}
	if raw := env("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = splitList(raw)
	}

	return ServerConfig{Port: port, CORSAllowedOrigins: origins}, nil
}

func loadCacheConfig() (CacheConfig, error) {
	cacheType := strings.ToLower(env("CACHE_TYPE"))
	if cacheType == "" {
		cacheType = factory.CacheTypeMemory
	}

	maxEntries := memorycache.DefaultMaxEntries
	if raw := env("CACHE_MAX_ENTRIES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return CacheConfig{}, fmt.Errorf("invalid CACHE_MAX_ENTRIES value: %q", raw)
		}
		maxEntries = n
	}

	switch cacheType {
	case factory.CacheTypeMemory:
		return CacheConfig{Type: cacheType, MaxEntries: maxEntries}, nil
	case factory.CacheTypeRedis:
		url := env("REDIS_URL")
		if url == "" {
			return CacheConfig{}, fmt.Errorf("REDIS_URL required when CACHE_TYPE=redis")
		}
		return CacheConfig{Type: cacheType, RedisURL: url, MaxEntries: maxEntries}, nil
	default:
		return CacheConfig{}, fmt.Errorf("invalid CACHE_TYPE value: %q (must be memory or redis)", cacheType)
	}
}

func loadGatewayConfig() (gateway.Config, error) {
	cfg := gateway.DefaultConfig()

	var err error
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", cfg.CacheTTL); err != nil {
		return cfg, err
	}
	if cfg.Timeout, err = durationEnv("HTTP_TIMEOUT", cfg.Timeout); err != nil {
		return cfg, err
	}

	overrides := map[string]*string{
		"SAVANT_URL":    &cfg.SavantURL,
		"BBREF_URL":     &cfg.BBRefURL,
		"FANGRAPHS_URL": &cfg.FanGraphsURL,
		"CHADWICK_URL":  &cfg.ChadwickURL,
	}
	for name, target := range overrides {
		if raw := env(name); raw != "" {
			*target = strings.TrimRight(raw, "/")
		}
	}

	return cfg, nil
}

func logLevel() (slog.Level, error) {
	var level slog.Level
	raw := env("LOG_LEVEL")
	if raw == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL value: %q", raw)
	}
	return level, nil
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := env(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s value: %q", name, raw)
	}
	return d, nil
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
