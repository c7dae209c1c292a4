package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/diamondstats/internal/cache"
	"github.com/mcoot/diamondstats/internal/model"
)

// Client implements Gateway over HTTP with a response cache
type Client struct {
	cfg    Config
	http   *http.Client
	cache  cache.Cache
	logger *slog.Logger
}

// New creates a gateway client
func New(cfg Config, c cache.Cache, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		cache:  c,
		logger: logger,
	}
}

// Ensure Client implements the interface
var _ Gateway = (*Client)(nil)

// ClearCache flushes the response cache
func (c *Client) ClearCache(ctx context.Context) error {
	if err := c.cache.Flush(ctx); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	c.logger.Info("upstream cache cleared")
	return nil
}

// get returns the body for endpoint, serving from cache when possible
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.getValid(ctx, endpoint, nil)
}

// getValid is get with a body check. A fetched body is cached only if valid
// accepts it, so a malformed page is fetched again next time.
func (c *Client) getValid(ctx context.Context, endpoint string, valid func([]byte) error) ([]byte, error) {
	key := cacheKey(endpoint)

	body, err := c.cache.Get(ctx, key)
	if err == nil {
		c.logger.Debug("upstream cache hit", slog.String("url", endpoint))
		if valid == nil {
			return body, nil
		}
		if err := valid(body); err == nil {
			return body, nil
		}
	}
	if err != nil && !errors.Is(err, model.ErrCacheMiss) {
		// Cache read failures fall through to a direct fetch
		c.logger.Warn("cache read failed", slog.String("url", endpoint), slog.String("error", err.Error()))
	}

	body, err = c.fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if valid != nil {
		if err := valid(body); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", model.ErrUpstream, redact(endpoint), err)
		}
	}

	if err := c.cache.Set(ctx, key, body, c.cfg.CacheTTL); err != nil {
		c.logger.Warn("cache write failed", slog.String("url", endpoint), slog.String("error", err.Error()))
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrUpstream, redact(endpoint), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", model.ErrUpstream, err)
	}

	c.logger.Info("upstream request",
		slog.String("url", redact(endpoint)),
		slog.Int("status", resp.StatusCode),
		slog.Int("size", len(body)),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", model.ErrUpstream, redact(endpoint), resp.StatusCode)
	}

	return body, nil
}

func cacheKey(endpoint string) string {
	sum := sha256.Sum256([]byte(endpoint))
	return hex.EncodeToString(sum[:])
}

// redact drops the query string so logs and error messages stay short
func redact(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
