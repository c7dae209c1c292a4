package factory

import (
	"context"
	"time"

	"github.com/mcoot/diamondstats/internal/cache/memory"
	"github.com/mcoot/diamondstats/internal/dependencies/mocks"
	"github.com/mcoot/diamondstats/internal/model"
	"github.com/mcoot/diamondstats/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockGateway *mocks.MockGateway
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	mockGateway := mocks.NewMockGateway()

	app := newWithDependencies(memory.New(mockClock), mockGateway, mockClock, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockGateway: mockGateway,
	}
}

// TestRoster returns a small roster in upstream order
func TestRoster() *model.Table {
	t := model.NewTable([]string{model.ColumnMLBAMID, model.ColumnFirstName, model.ColumnLastName})
	t.AppendRow([]any{int64(545361), "Mike", "Trout"})
	t.AppendRow([]any{int64(660271), "Shohei", "Ohtani"})
	t.AppendRow([]any{int64(592450), "Aaron", "Judge"})
	t.AppendRow([]any{int64(605141), "Mookie", "Betts"})
	t.AppendRow([]any{int64(641355), "Cody", "Bellinger"})
	t.AppendRow([]any{int64(502110), "J.D.", "Martinez"})
	t.AppendRow([]any{int64(500743), "Miguel", "Rojas"})
	return t
}

// LoadTestRoster loads TestRoster into the player index
func (t *TestApp) LoadTestRoster() error {
	t.MockGateway.Roster = TestRoster()
	if status := t.PlayerIndex.Load(context.Background()); !status.Ready {
		return status.Err
	}
	return nil
}
