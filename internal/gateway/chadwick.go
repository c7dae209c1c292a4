package gateway

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/diamondstats/internal/model"
)

// The register is split into shards named by hex digit
const registerShards = "0123456789abcdef"

// requiredRosterColumns must be in every shard header
var requiredRosterColumns = []string{model.ColumnMLBAMID, model.ColumnFirstName, model.ColumnLastName}

// rosterColumns are kept from the register; everything else is dropped at fetch time
var rosterColumns = []string{
	model.ColumnMLBAMID,
	model.ColumnFirstName,
	model.ColumnLastName,
	"key_retro",
	"key_bbref",
	"key_fangraphs",
	"mlb_played_first",
	"mlb_played_last",
}

// FetchRoster downloads every register shard concurrently and concatenates
// them in shard order. A shard that is not register CSV fails the whole fetch
// and is not cached.
func (c *Client) FetchRoster(ctx context.Context) (*model.Table, error) {
	shards := make([]*model.Table, len(registerShards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, shard := range registerShards {
		i, shard := i, shard
		endpoint := fmt.Sprintf("%s/data/people-%c.csv", c.cfg.ChadwickURL, shard)
		g.Go(func() error {
			var table *model.Table
			_, err := c.getValid(ctx, endpoint, func(body []byte) error {
				parsed, err := parseRosterShard(body)
				table = parsed
				return err
			})
			if err != nil {
				return fmt.Errorf("roster shard %c: %w", shard, err)
			}
			shards[i] = table.Project(rosterColumns)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roster := model.NewTable(rosterColumns)
	for _, shard := range shards {
		roster.Rows = append(roster.Rows, shard.Rows...)
	}
	return roster, nil
}

func parseRosterShard(body []byte) (*model.Table, error) {
	table, err := parseCSV(body, model.ColumnFirstName, model.ColumnLastName)
	if err != nil {
		return nil, err
	}
	for _, col := range requiredRosterColumns {
		if table.ColumnIndex(col) < 0 {
			return nil, fmt.Errorf("register shard is missing column %q", col)
		}
	}
	return table, nil
}
