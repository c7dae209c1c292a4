package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	memorycache "github.com/mcoot/diamondstats/internal/cache/memory"
	rediscache "github.com/mcoot/diamondstats/internal/cache/redis"
	"github.com/mcoot/diamondstats/internal/model"
)

type FactorySuite struct {
	suite.Suite
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FactorySuite) TestDefaultsToMemoryCache() {
	app, err := New(Config{})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&memorycache.Cache{}, app.Cache)
	s.NotNil(app.Gateway)
	s.False(app.PlayerIndex.IsReady())
}

func (s *FactorySuite) TestRedisCache() {
	mr := miniredis.RunT(s.T())

	cfg := rediscache.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{CacheType: CacheTypeRedis, RedisConfig: &cfg})
	s.Require().NoError(err)
	defer app.Close()

	s.IsType(&rediscache.Cache{}, app.Cache)
	s.Require().NoError(app.Cache.Set(s.ctx, "k", []byte("v"), 0))
	s.True(mr.Exists("diamondstats:cache:k"))
}

func (s *FactorySuite) TestRedisRequiresConfig() {
	_, err := New(Config{CacheType: CacheTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestInvalidCacheType() {
	_, err := New(Config{CacheType: "memcached"})
	s.Error(err)
}

func (s *FactorySuite) TestTestAppWiresMocks() {
	app := NewTestApp()
	s.Require().NoError(app.LoadTestRoster())

	s.True(app.PlayerIndex.IsReady())
	s.Equal(TestRoster().Len(), app.PlayerIndex.Status().Count)

	results := app.PlayerIndex.Search("trout")
	s.Require().Len(results, 1)
	s.Equal(model.PlayerID(545361), results[0].ID)
}

func (s *FactorySuite) TestTestAppRosterFailure() {
	app := NewTestApp()
	app.MockGateway.Err = errors.New("upstream down")

	s.Error(app.LoadTestRoster())
	s.False(app.PlayerIndex.IsReady())
}
