package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/diamondstats/internal/cache"
	"github.com/mcoot/diamondstats/internal/dependencies/clock"
	"github.com/mcoot/diamondstats/internal/model"
)

const (
	// DefaultMaxEntries bounds the cache when no limit is given
	DefaultMaxEntries = 10000

	// sweepInterval is the minimum clock time between expiry sweeps
	sweepInterval = time.Minute
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Option configures a Cache
type Option func(*Cache)

// WithMaxEntries caps the number of stored entries. When full, the entry
// closest to expiry is evicted to make room.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// Cache is an in-memory implementation of the cache interface. Expired
// entries are swept on write, at most once per sweepInterval.
type Cache struct {
	mu         sync.RWMutex
	clock      clock.Clock
	entries    map[string]entry
	maxEntries int
	nextSweep  time.Time
}

// New creates a new in-memory cache
func New(clk clock.Clock, opts ...Option) *Cache {
	c := &Cache{
		clock:      clk,
		entries:    make(map[string]entry),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Cache implements the interface
var _ cache.Cache = (*Cache)(nil)

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	now := c.clock.Now()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, model.ErrCacheMiss
	}
	if e.expired(now) {
		c.mu.Lock()
		// A concurrent Set may have replaced the entry since the read
		if cur, ok := c.entries[key]; ok && cur.expired(now) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, model.ErrCacheMiss
	}
	return e.value, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := c.clock.Now()
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !now.Before(c.nextSweep) {
		c.sweep(now)
		c.nextSweep = now.Add(sweepInterval)
	}
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.sweep(now)
		if len(c.entries) >= c.maxEntries {
			c.evictSoonest()
		}
	}
	c.entries[key] = e
	return nil
}

// sweep drops expired entries. Caller holds the write lock.
func (c *Cache) sweep(now time.Time) {
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
		}
	}
}

// evictSoonest drops the entry that expires first; entries without expiry go
// last. Caller holds the write lock.
func (c *Cache) evictSoonest() {
	var victim string
	var victimExpiry time.Time
	found := false
	for key, e := range c.entries {
		switch {
		case !found:
		case e.expiresAt.IsZero():
			continue
		case !victimExpiry.IsZero() && !e.expiresAt.Before(victimExpiry):
			continue
		}
		victim, victimExpiry, found = key, e.expiresAt, true
	}
	if found {
		delete(c.entries, victim)
	}
}

func (c *Cache) Flush(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet swept
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
