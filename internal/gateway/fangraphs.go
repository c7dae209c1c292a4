package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mcoot/diamondstats/internal/model"
)

type leadersResponse struct {
	Data       []map[string]any `json:"data"`
	TotalCount int              `json:"totalCount"`
}

// SeasonStats returns the FanGraphs season leaderboard for qualified players
func (c *Client) SeasonStats(ctx context.Context, statType model.StatType, year int) (*model.Table, error) {
	stats := "bat"
	if statType == model.StatTypePitching {
		stats = "pit"
	}

	season := strconv.Itoa(year)
	q := url.Values{}
	q.Set("pos", "all")
	q.Set("stats", stats)
	q.Set("lg", "all")
	q.Set("qual", "y")
	q.Set("season", season)
	q.Set("season1", season)
	q.Set("month", "0")
	q.Set("team", "0")
	q.Set("ind", "0")
	q.Set("rost", "0")
	q.Set("type", "8")
	q.Set("pageitems", "2000000000")
	q.Set("pagenum", "1")
	q.Set("sortdir", "default")
	q.Set("sortstat", "WAR")

	endpoint := fmt.Sprintf("%s/api/leaders/major-league/data?%s", c.cfg.FanGraphsURL, q.Encode())
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("season %s stats %d: %w", statType, year, err)
	}

	table, err := parseLeaders(body)
	if err != nil {
		return nil, fmt.Errorf("season %s stats %d: %w", statType, year, err)
	}
	return table, nil
}

func parseLeaders(body []byte) (*model.Table, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var resp leadersResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode leaders: %w", err)
	}

	// Rows may omit keys, so the column set is the union across rows
	colSet := make(map[string]struct{})
	for _, row := range resp.Data {
		for k := range row {
			colSet[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(colSet))
	for k := range colSet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	table := model.NewTable(columns)
	for _, row := range resp.Data {
		cells := make([]any, len(columns))
		for i, col := range columns {
			cells[i] = jsonCell(row[col])
		}
		table.AppendRow(cells)
	}
	return table, nil
}

func jsonCell(v any) any {
	switch val := v.(type) {
	case json.Number:
		return model.ParseCell(val.String())
	case string:
		if strings.Contains(val, "<") {
			return htmlText(val)
		}
		return val
	case bool:
		return val
	default:
		return nil
	}
}

// htmlText reduces an HTML fragment such as a player link to its text
func htmlText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return strings.TrimSpace(doc.Text())
}
