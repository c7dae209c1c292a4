// Package stats resolves request parameters and shapes gateway results for the API.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/diamondstats/internal/dependencies/clock"
	"github.com/mcoot/diamondstats/internal/gateway"
	"github.com/mcoot/diamondstats/internal/model"
)

// DefaultWindowDays is the length of the trailing window used when no dates are given
const DefaultWindowDays = 30

// DateLayout is the accepted format for start and end dates
const DateLayout = "2006-01-02"

// Service delegates statistics queries to the gateway
type Service struct {
	gateway gateway.Gateway
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new stats service
func New(gw gateway.Gateway, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		gateway: gw,
		clock:   clk,
		logger:  logger,
	}
}

// DateRange resolves optional start and end dates. Both must be supplied to be
// used; otherwise the trailing DefaultWindowDays ending today applies.
func (s *Service) DateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	startRaw = strings.TrimSpace(startRaw)
	endRaw = strings.TrimSpace(endRaw)

	if startRaw == "" || endRaw == "" {
		end := s.clock.Now()
		return end.AddDate(0, 0, -DefaultWindowDays), end, nil
	}

	start, err := time.Parse(DateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q must be YYYY-MM-DD", model.ErrInvalidDate, startRaw)
	}
	end, err := time.Parse(DateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q must be YYYY-MM-DD", model.ErrInvalidDate, endRaw)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", model.ErrInvalidDateRange, startRaw, endRaw)
	}
	return start, end, nil
}

// Season resolves a year parameter, falling back to the current year when
// absent or not numeric
func (s *Service) Season(raw string) int {
	if year, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && year > 0 {
		return year
	}
	return s.clock.Now().Year()
}

// BatterEvents returns pitch-level rows for a batter
func (s *Service) BatterEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) ([]model.Record, error) {
	table, err := s.gateway.BatterEvents(ctx, playerID, start, end)
	if err != nil {
		return nil, err
	}
	return table.Records(), nil
}

// PitcherEvents returns pitch-level rows for a pitcher
func (s *Service) PitcherEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) ([]model.Record, error) {
	table, err := s.gateway.PitcherEvents(ctx, playerID, start, end)
	if err != nil {
		return nil, err
	}
	return table.Records(), nil
}

// Standings returns team rows grouped by division name
func (s *Service) Standings(ctx context.Context, year int) (map[string][]model.Record, error) {
	divisions, err := s.gateway.Standings(ctx, year)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Record, len(divisions))
	for _, d := range divisions {
		grouped[d.Name] = d.Table.Records()
	}
	return grouped, nil
}

// TeamSchedule returns a team's games for a season
func (s *Service) TeamSchedule(ctx context.Context, year int, team string) ([]model.Record, error) {
	table, err := s.gateway.TeamSchedule(ctx, year, team)
	if err != nil {
		return nil, err
	}
	return table.Records(), nil
}

// SeasonStats returns the season aggregate leaderboard
func (s *Service) SeasonStats(ctx context.Context, statType model.StatType, year int) ([]model.Record, error) {
	table, err := s.gateway.SeasonStats(ctx, statType, year)
	if err != nil {
		return nil, err
	}
	return table.Records(), nil
}

// PercentileRankings returns the percentile rows belonging to one player,
// possibly none
func (s *Service) PercentileRankings(ctx context.Context, playerID model.PlayerID, playerType model.PlayerType, year int) ([]model.Record, error) {
	table, err := s.gateway.PercentileRanks(ctx, playerType, year)
	if err != nil {
		return nil, err
	}

	mine := table.Filter(func(i int) bool {
		id, ok := model.CellInt(table.Value(i, "player_id"))
		return ok && model.PlayerID(id) == playerID
	})
	return mine.Records(), nil
}

// ClearCache flushes the gateway's response cache. The player index is not reloaded.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.gateway.ClearCache(ctx)
}
