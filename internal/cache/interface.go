package cache

import (
	"context"
	"time"
)

// Cache stores upstream response bodies keyed by request identity
type Cache interface {
	// Get returns the cached body, or model.ErrCacheMiss if absent or expired
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a body; a zero ttl means no expiry
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Flush removes every cached entry
	Flush(ctx context.Context) error
}
