package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/diamondstats/internal/model"
)

type CacheSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	cache *Cache
	ctx   context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.ScanBatch = 2

	s.cache = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *CacheSuite) TearDownTest() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *CacheSuite) TestGetMiss() {
	_, err := s.cache.Get(s.ctx, "absent")
	s.ErrorIs(err, model.ErrCacheMiss)
}

func (s *CacheSuite) TestSetAndGet() {
	s.Require().NoError(s.cache.Set(s.ctx, "abc", []byte("payload"), time.Hour))

	got, err := s.cache.Get(s.ctx, "abc")
	s.Require().NoError(err)
	s.Equal([]byte("payload"), got)
	s.True(s.mini.Exists("diamondstats:cache:abc"))
}

func (s *CacheSuite) TestTTLApplied() {
	s.Require().NoError(s.cache.Set(s.ctx, "abc", []byte("payload"), time.Minute))

	s.Equal(time.Minute, s.mini.TTL("diamondstats:cache:abc"))

	s.mini.FastForward(time.Minute)
	_, err := s.cache.Get(s.ctx, "abc")
	s.ErrorIs(err, model.ErrCacheMiss)
}

func (s *CacheSuite) TestFlushRemovesOnlyPrefixedKeys() {
	for i := 0; i < 7; i++ {
		s.Require().NoError(s.cache.Set(s.ctx, fmt.Sprintf("k%d", i), []byte("v"), 0))
	}
	s.Require().NoError(s.mini.Set("unrelated", "keep"))

	s.Require().NoError(s.cache.Flush(s.ctx))

	for i := 0; i < 7; i++ {
		_, err := s.cache.Get(s.ctx, fmt.Sprintf("k%d", i))
		s.ErrorIs(err, model.ErrCacheMiss)
	}
	s.True(s.mini.Exists("unrelated"))
}

func (s *CacheSuite) TestFlushEmpty() {
	s.NoError(s.cache.Flush(s.ctx))
}
