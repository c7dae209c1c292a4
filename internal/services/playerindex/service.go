// Package playerindex keeps the player roster resident in memory and answers
// name autocomplete queries against it.
package playerindex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mcoot/diamondstats/internal/dependencies/clock"
	"github.com/mcoot/diamondstats/internal/model"
)

const (
	// MaxResults caps the number of records a search returns
	MaxResults = 15
	// MinQueryLength is the shortest query the API accepts
	MinQueryLength = 3
)

// RosterSource supplies the bulk roster table
type RosterSource interface {
	FetchRoster(ctx context.Context) (*model.Table, error)
}

// Status describes the outcome of the most recent load
type Status struct {
	Ready    bool
	Count    int
	Dropped  int
	LoadedAt time.Time
	Err      error
}

type entry struct {
	record model.RosterRecord
	first  string
	last   string
	full   string
}

// snapshot is immutable once published
type snapshot struct {
	entries []entry
	status  Status
}

// Service is the in-memory player search index
type Service struct {
	source RosterSource
	clock  clock.Clock
	logger *slog.Logger

	current atomic.Pointer[snapshot]
}

// New creates an empty, not-ready index
func New(source RosterSource, clk clock.Clock, logger *slog.Logger) *Service {
	s := &Service{
		source: source,
		clock:  clk,
		logger: logger,
	}
	s.current.Store(&snapshot{})
	return s
}

// Load fetches the roster and replaces the index contents. Failures leave the
// index empty and not ready; the cause is reported in the returned Status and
// never as an error.
func (s *Service) Load(ctx context.Context) Status {
	start := s.clock.Now()

	next, err := s.build(ctx)
	if err != nil {
		next = &snapshot{status: Status{Err: err}}
		s.current.Store(next)
		s.logger.Error("player index load failed", slog.String("error", err.Error()))
		return next.status
	}

	next.status.LoadedAt = s.clock.Now()
	s.current.Store(next)

	s.logger.Info("player index loaded",
		slog.Int("count", next.status.Count),
		slog.Int("dropped", next.status.Dropped),
		slog.Duration("duration", s.clock.Since(start)),
	)
	return next.status
}

func (s *Service) build(ctx context.Context) (*snapshot, error) {
	roster, err := s.source.FetchRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	if roster == nil {
		return nil, fmt.Errorf("fetch roster: empty response")
	}

	for _, col := range []string{model.ColumnMLBAMID, model.ColumnFirstName, model.ColumnLastName} {
		if roster.ColumnIndex(col) < 0 {
			return nil, fmt.Errorf("roster is missing column %q", col)
		}
	}

	entries := make([]entry, 0, roster.Len())
	for i := range roster.Rows {
		rec, ok := extract(roster, i)
		if !ok {
			continue
		}
		first := strings.ToLower(rec.FirstName)
		last := strings.ToLower(rec.LastName)
		entries = append(entries, entry{
			record: rec,
			first:  first,
			last:   last,
			full:   first + " " + last,
		})
	}

	return &snapshot{
		entries: entries,
		status: Status{
			Ready:   true,
			Count:   len(entries),
			Dropped: roster.Len() - len(entries),
		},
	}, nil
}

// extract reads one roster row; rows lacking an integer id or either name are rejected
func extract(roster *model.Table, i int) (model.RosterRecord, bool) {
	id, ok := model.CellInt(roster.Value(i, model.ColumnMLBAMID))
	if !ok {
		return model.RosterRecord{}, false
	}
	first := model.CellString(roster.Value(i, model.ColumnFirstName))
	last := model.CellString(roster.Value(i, model.ColumnLastName))
	if first == "" || last == "" {
		return model.RosterRecord{}, false
	}
	return model.RosterRecord{ID: model.PlayerID(id), FirstName: first, LastName: last}, true
}

// IsReady reports whether the last load succeeded
func (s *Service) IsReady() bool {
	return s.current.Load().status.Ready
}

// Status returns the outcome of the last load
func (s *Service) Status() Status {
	return s.current.Load().status
}

// Search returns up to MaxResults records whose first name, last name or
// "first last" contains query, case-insensitively, in roster order.
// Scanning stops at the first MaxResults matches.
func (s *Service) Search(query string) []model.RosterRecord {
	results := []model.RosterRecord{}

	q := strings.ToLower(query)
	if q == "" {
		return results
	}

	for _, e := range s.current.Load().entries {
		if strings.Contains(e.first, q) || strings.Contains(e.last, q) || strings.Contains(e.full, q) {
			results = append(results, e.record)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}

// Start performs the initial Load, bounded by loadTimeout, then refreshes like
// Run. It blocks until ctx is done; searches see a not-ready index until the
// first load succeeds.
func (s *Service) Start(ctx context.Context, loadTimeout, interval time.Duration) {
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	s.Load(loadCtx)
	cancel()

	s.Run(ctx, interval)
}

// Run reloads the index every interval until ctx is done.
// A non-positive interval disables refreshing.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Load(ctx)
		}
	}
}
