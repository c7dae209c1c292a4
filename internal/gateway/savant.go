package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/mcoot/diamondstats/internal/model"
)

const savantDateLayout = "2006-01-02"

// BatterEvents returns statcast pitch rows where the player was batting
func (c *Client) BatterEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) (*model.Table, error) {
	return c.statcastSearch(ctx, model.PlayerTypeBatter, playerID, start, end)
}

// PitcherEvents returns statcast pitch rows where the player was pitching
func (c *Client) PitcherEvents(ctx context.Context, playerID model.PlayerID, start, end time.Time) (*model.Table, error) {
	return c.statcastSearch(ctx, model.PlayerTypePitcher, playerID, start, end)
}

func (c *Client) statcastSearch(ctx context.Context, playerType model.PlayerType, playerID model.PlayerID, start, end time.Time) (*model.Table, error) {
	q := url.Values{}
	q.Set("all", "true")
	q.Set("type", "details")
	q.Set("player_type", string(playerType))
	q.Set("hfGT", "R|PO|S|")
	q.Set("game_date_gt", start.Format(savantDateLayout))
	q.Set("game_date_lt", end.Format(savantDateLayout))
	q.Set(string(playerType)+"s_lookup[]", strconv.Itoa(int(playerID)))
	q.Set("min_pitches", "0")
	q.Set("min_results", "0")
	q.Set("min_abs", "0")
	q.Set("group_by", "name")
	q.Set("sort_col", "pitches")
	q.Set("sort_order", "desc")

	endpoint := fmt.Sprintf("%s/statcast_search/csv?%s", c.cfg.SavantURL, q.Encode())
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("statcast %s %d: %w", playerType, playerID, err)
	}

	table, err := parseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("statcast %s %d: %w", playerType, playerID, err)
	}
	return table, nil
}

// PercentileRanks returns the statcast percentile leaderboard for a season
func (c *Client) PercentileRanks(ctx context.Context, playerType model.PlayerType, year int) (*model.Table, error) {
	q := url.Values{}
	q.Set("type", string(playerType))
	q.Set("year", strconv.Itoa(year))
	q.Set("position", "")
	q.Set("team", "")
	q.Set("csv", "true")

	endpoint := fmt.Sprintf("%s/leaderboard/percentile-rankings?%s", c.cfg.SavantURL, q.Encode())
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("percentile rankings %s %d: %w", playerType, year, err)
	}

	table, err := parseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("percentile rankings %s %d: %w", playerType, year, err)
	}
	return table, nil
}
