package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/diamondstats/internal/model"
)

// GatewayCall records one call made to MockGateway
type GatewayCall struct {
	Method     string
	PlayerID   model.PlayerID
	Start      time.Time
	End        time.Time
	Year       int
	Team       string
	StatType   model.StatType
	PlayerType model.PlayerType
}

// MockGateway is a configurable statistics gateway for testing.
// Unset tables are returned as empty tables.
type MockGateway struct {
	mu    sync.Mutex
	calls []GatewayCall

	Roster      *model.Table
	Events      *model.Table
	Divisions   []model.Division
	Schedule    *model.Table
	Season      *model.Table
	Percentiles *model.Table

	// Err is returned by every query method when set
	Err error
	// ClearErr is returned by ClearCache when set
	ClearErr error
	Cleared  int
}

// NewMockGateway creates an empty MockGateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) record(c GatewayCall) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, c)
}

// Calls returns the recorded calls in order
func (g *MockGateway) Calls() []GatewayCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]GatewayCall, len(g.calls))
	copy(out, g.calls)
	return out
}

// LastCall returns the most recent call
func (g *MockGateway) LastCall() GatewayCall {
	calls := g.Calls()
	if len(calls) == 0 {
		return GatewayCall{}
	}
	return calls[len(calls)-1]
}

func orEmpty(t *model.Table) *model.Table {
	if t == nil {
		return model.NewTable(nil)
	}
	return t
}

func (g *MockGateway) FetchRoster(ctx context.Context) (*model.Table, error) {
	g.record(GatewayCall{Method: "FetchRoster"})
	if g.Err != nil {
		return nil, g.Err
	}
	return orEmpty(g.Roster), nil
}

func (g *MockGateway) BatterEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) (*model.Table, error) {
	g.record(GatewayCall{Method: "BatterEvents", PlayerID: playerID, Start: start, End: end})
	if g.Err != nil {
		return nil, g.Err
	}
	return orEmpty(g.Events), nil
}

func (g *MockGateway) PitcherEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) (*model.Table, error) {
	g.record(GatewayCall{Method: "PitcherEvents", PlayerID: playerID, Start: start, End: end})
	if g.Err != nil {
		return nil, g.Err
	}
	return orEmpty(g.Events), nil
}

func (g *MockGateway) Standings(ctx context.Context, year int) ([]model.Division, error) {
	g.record(GatewayCall{Method: "Standings", Year: year})
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Divisions, nil
}

func (g *MockGateway) TeamSchedule(ctx context.Context, year int, team string) (*model.Table, error) {
	g.record(GatewayCall{Method: "TeamSchedule", Year: year, Team: team})
	if g.Err != nil {
		return nil, g.Err
	}
	return orEmpty(g.Schedule), nil
}

func (g *MockGateway) SeasonStats(ctx context.Context, statType model.StatType, year int) (*model.Table, error) {
	g.record(GatewayCall{Method: "SeasonStats", StatType: statType, Year: year})
	if g.Err != nil {
		return nil, g.Err
	}
	return orEmpty(g.Season), nil
}

func (g *MockGateway) PercentileRanks(ctx context.Context, playerType model.PlayerType, year int) (*model.Table, error) {
	g.record(GatewayCall{Method: "PercentileRanks", PlayerType: playerType, Year: year})
	if g.Err != nil {
		return nil, g.Err
	}
	return orEmpty(g.Percentiles), nil
}

func (g *MockGateway) ClearCache(ctx context.Context) error {
	g.record(GatewayCall{Method: "ClearCache"})
	if g.ClearErr != nil {
		return g.ClearErr
	}
	g.mu.Lock()
	g.Cleared++
	g.mu.Unlock()
	return nil
}
