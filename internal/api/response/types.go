package response

import (
	"time"

	"github.com/mcoot/diamondstats/internal/model"
	"github.com/mcoot/diamondstats/internal/services/playerindex"
)

// Player is a roster search hit
type Player struct {
	ID        int    `json:"key_mlbam"`
	FirstName string `json:"name_first"`
	LastName  string `json:"name_last"`
}

// PlayerFromModel converts a model.RosterRecord to a response Player
func PlayerFromModel(r model.RosterRecord) Player {
	return Player{
		ID:        int(r.ID),
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// PlayersFromModel converts search results, always yielding a non-nil slice
func PlayersFromModel(records []model.RosterRecord) []Player {
	players := make([]Player, len(records))
	for i, r := range records {
		players[i] = PlayerFromModel(r)
	}
	return players
}

// IndexStatus describes the player index
type IndexStatus struct {
	Ready    bool       `json:"ready"`
	Count    int        `json:"count"`
	Dropped  int        `json:"dropped"`
	LoadedAt *time.Time `json:"loaded_at"`
	Error    string     `json:"error,omitempty"`
}

// IndexStatusFromService converts a playerindex.Status
func IndexStatusFromService(s playerindex.Status) IndexStatus {
	status := IndexStatus{
		Ready:   s.Ready,
		Count:   s.Count,
		Dropped: s.Dropped,
	}
	if !s.LoadedAt.IsZero() {
		loadedAt := s.LoadedAt
		status.LoadedAt = &loadedAt
	}
	if s.Err != nil {
		status.Error = s.Err.Error()
	}
	return status
}

// Health is the response for the health endpoint
type Health struct {
	Status     string `json:"status"`
	IndexReady bool   `json:"index_ready"`
}

// CacheCleared is the response for the cache clear endpoint
type CacheCleared struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
