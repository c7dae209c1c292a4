package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	cyan  = color.New(color.FgCyan, color.Bold)
)

// Output handles formatting output based on the configured format
type Output struct {
	format  string
	columns []string
	w       io.Writer
}

// NewOutput creates a new Output formatter writing to w.
// columns limits which row fields are shown in text mode.
func NewOutput(format string, columns []string, w io.Writer) *Output {
	return &Output{format: format, columns: columns, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []Player:
		o.printPlayers(v)
	case IndexStatus:
		o.printIndexStatus(v)
	case HealthResult:
		o.printHealthResult(v)
	case CacheCleared:
		fmt.Fprintln(o.w, v.Message)
	case Rows:
		o.printRows(v)
	case Standings:
		o.printStandings(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        int    `json:"key_mlbam"`
	FirstName string `json:"name_first"`
	LastName  string `json:"name_last"`
}

// IndexStatus response type
type IndexStatus struct {
	Ready    bool       `json:"ready"`
	Count    int        `json:"count"`
	Dropped  int        `json:"dropped"`
	LoadedAt *time.Time `json:"loaded_at"`
	Error    string     `json:"error,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status     string `json:"status"`
	IndexReady bool   `json:"index_ready"`
}

// CacheCleared response type
type CacheCleared struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Rows is a tabular result: one JSON object per row
type Rows []map[string]any

// Standings maps division names to team rows
type Standings map[string]Rows

func yesNo(b bool) string {
	if b {
		return green.Sprint("yes")
	}
	return red.Sprint("no")
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Fprintln(o.w, "No players found")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST\tLAST")
	for _, p := range players {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.FirstName, p.LastName)
	}
	_ = tw.Flush()
}

func (o *Output) printIndexStatus(s IndexStatus) {
	fmt.Fprintf(o.w, "Ready: %s\n", yesNo(s.Ready))
	fmt.Fprintf(o.w, "Players: %d\n", s.Count)
	fmt.Fprintf(o.w, "Dropped: %d\n", s.Dropped)
	if s.LoadedAt != nil {
		fmt.Fprintf(o.w, "Loaded: %s\n", s.LoadedAt.Format(time.RFC3339))
	}
	if s.Error != "" {
		fmt.Fprintf(o.w, "Error: %s\n", red.Sprint(s.Error))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Index ready: %s\n", yesNo(h.IndexReady))
}

func (o *Output) printRows(rows Rows) {
	if len(rows) == 0 {
		fmt.Fprintln(o.w, "No rows")
		return
	}

	columns := o.columns
	if len(columns) == 0 {
		columns = rowColumns(rows)
	}

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = formatCell(row[col])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

func (o *Output) printStandings(s Standings) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(o.w)
		}
		fmt.Fprintln(o.w, cyan.Sprint(name))
		o.printRows(s[name])
	}
}

// rowColumns returns the sorted union of keys across rows
func rowColumns(rows Rows) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			seen[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return "-"
	case float64:
		if c == math.Trunc(c) && math.Abs(c) < 1e15 {
			return strconv.FormatInt(int64(c), 10)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}
