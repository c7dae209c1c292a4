package redis

// Config holds Redis connection settings for the response cache
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// KeyPrefix namespaces cache keys so Flush never touches foreign data
	KeyPrefix string

	// ScanBatch is the COUNT hint used when scanning keys to flush
	ScanBatch int64
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		KeyPrefix:    "diamondstats",
		ScanBatch:    500,
	}
}
