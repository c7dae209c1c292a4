// Package gateway fetches baseball statistics from public upstream sources
// and returns them as tables.
package gateway

import (
	"context"
	"time"

	"github.com/mcoot/diamondstats/internal/model"
)

// Gateway is the statistics provider used by the player index and the API
type Gateway interface {
	// FetchRoster returns the bulk player register
	FetchRoster(ctx context.Context) (*model.Table, error)
	// BatterEvents returns pitch-level statcast rows for a batter, inclusive of both dates
	BatterEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) (*model.Table, error)
	// PitcherEvents returns pitch-level statcast rows for a pitcher, inclusive of both dates
	PitcherEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) (*model.Table, error)
	// Standings returns one table per division for a season
	Standings(ctx context.Context, year int) ([]model.Division, error)
	// TeamSchedule returns a team's schedule and results for a season
	TeamSchedule(ctx context.Context, year int, team string) (*model.Table, error)
	// SeasonStats returns the season aggregate leaderboard
	SeasonStats(ctx context.Context, statType model.StatType, year int) (*model.Table, error)
	// PercentileRanks returns the statcast percentile leaderboard
	PercentileRanks(ctx context.Context, playerType model.PlayerType, year int) (*model.Table, error)
	// ClearCache drops every cached upstream response
	ClearCache(ctx context.Context) error
}

// Config holds upstream locations and HTTP behavior
type Config struct {
	SavantURL    string
	BBRefURL     string
	FanGraphsURL string
	ChadwickURL  string

	// Timeout bounds each upstream HTTP request
	Timeout time.Duration
	// CacheTTL is how long upstream bodies stay cached; zero caches forever
	CacheTTL  time.Duration
	UserAgent string
}

// DefaultConfig returns the public upstream endpoints
func DefaultConfig() Config {
	return Config{
		SavantURL:    "https://baseballsavant.mlb.com",
		BBRefURL:     "https://www.baseball-reference.com",
		FanGraphsURL: "https://www.fangraphs.com",
		ChadwickURL:  "https://raw.githubusercontent.com/chadwickbureau/register/master",
		Timeout:      30 * time.Second,
		CacheTTL:     24 * time.Hour,
		UserAgent:    "diamondstats/1.0",
	}
}
