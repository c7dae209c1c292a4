package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mcoot/diamondstats/internal/model"
)

// Baseball-Reference ships most tables inside HTML comments
var uncomment = strings.NewReplacer("<!--", "", "-->", "")

// Standings returns one table per division for the season
func (c *Client) Standings(ctx context.Context, year int) ([]model.Division, error) {
	endpoint := fmt.Sprintf("%s/leagues/majors/%d-standings.shtml", c.cfg.BBRefURL, year)
	doc, err := c.getDocument(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("standings %d: %w", year, err)
	}

	var divisions []model.Division
	seen := make(map[string]int)
	doc.Find(`table[id^="standings_"]`).Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("caption").First().Text())
		if name == "" {
			name = sel.AttrOr("id", fmt.Sprintf("division_%d", i))
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s (%d)", name, n)
		}
		divisions = append(divisions, model.Division{Name: name, Table: parseHTMLTable(sel)})
	})

	if len(divisions) == 0 {
		return nil, fmt.Errorf("standings %d: %w", year, model.ErrTableNotFound)
	}
	return divisions, nil
}

// TeamSchedule returns the schedule and results table for a team's season
func (c *Client) TeamSchedule(ctx context.Context, year int, team string) (*model.Table, error) {
	team = strings.ToUpper(strings.TrimSpace(team))
	endpoint := fmt.Sprintf("%s/teams/%s/%d-schedule-scores.shtml", c.cfg.BBRefURL, url.PathEscape(team), year)
	doc, err := c.getDocument(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("schedule %s %d: %w", team, year, err)
	}

	sel := doc.Find("table#team_schedule").First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("schedule %s %d: %w", team, year, model.ErrTableNotFound)
	}
	return parseHTMLTable(sel), nil
}

func (c *Client) getDocument(ctx context.Context, endpoint string) (*goquery.Document, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(uncomment.Replace(string(body)))))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// parseHTMLTable reads a Baseball-Reference style table. Columns are keyed by
// the data-stat attribute of the last header row; repeated header rows and
// spacer rows inside the body are skipped.
func parseHTMLTable(table *goquery.Selection) *model.Table {
	var columns []string
	table.Find("thead tr").Last().Find("th, td").Each(func(i int, th *goquery.Selection) {
		name := th.AttrOr("data-stat", "")
		if name == "" {
			name = strings.TrimSpace(th.Text())
		}
		if name == "" {
			name = fmt.Sprintf("col_%d", i)
		}
		columns = append(columns, name)
	})
	result := model.NewTable(columns)

	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") || tr.HasClass("spacer") || tr.HasClass("over_header") {
			return
		}
		cells := make([]any, len(columns))
		filled := false
		tr.Find("th, td").Each(func(i int, td *goquery.Selection) {
			pos := -1
			if stat, ok := td.Attr("data-stat"); ok {
				pos = result.ColumnIndex(stat)
			} else if i < len(columns) {
				pos = i
			}
			if pos < 0 {
				return
			}
			cells[pos] = model.ParseCell(td.Text())
			filled = true
		})
		if filled {
			result.AppendRow(cells)
		}
	})

	return result
}
