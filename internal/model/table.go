package model

import (
	"math"
	"strconv"
	"strings"
)

// Record is one table row keyed by column name
type Record map[string]any

// Table is a column-ordered tabular result from an upstream source.
// Cells hold nil, int64, float64, bool or string.
type Table struct {
	Columns []string
	Rows    [][]any

	index map[string]int
}

// NewTable creates an empty table with the given columns
func NewTable(columns []string) *Table {
	t := &Table{Columns: columns}
	t.buildIndex()
	return t
}

func (t *Table) buildIndex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
}

// AppendRow adds a row, padding missing trailing cells with nil
func (t *Table) AppendRow(cells []any) {
	row := make([]any, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the position of a column, or -1 if absent
func (t *Table) ColumnIndex(name string) int {
	if t.index == nil {
		t.buildIndex()
	}
	i, ok := t.index[name]
	if !ok {
		return -1
	}
	return i
}

// Value returns the cell at row i in the named column, nil if the column is absent
func (t *Table) Value(i int, column string) any {
	c := t.ColumnIndex(column)
	if c < 0 || i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i][c]
}

// Filter returns a new table holding the rows for which keep returns true
func (t *Table) Filter(keep func(row int) bool) *Table {
	out := NewTable(t.Columns)
	for i, row := range t.Rows {
		if keep(i) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Project returns a new table with only the named columns, in the given order.
// Columns absent from t are filled with nil.
func (t *Table) Project(columns []string) *Table {
	out := NewTable(columns)
	positions := make([]int, len(columns))
	for i, c := range columns {
		positions[i] = t.ColumnIndex(c)
	}
	for _, row := range t.Rows {
		cells := make([]any, len(columns))
		for i, p := range positions {
			if p >= 0 {
				cells[i] = row[p]
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

// Records converts every row to a Record. Every column is present in every
// record; missing and non-finite numeric cells are nil.
func (t *Table) Records() []Record {
	if t == nil {
		return []Record{}
	}
	records := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		rec := make(Record, len(t.Columns))
		for c, name := range t.Columns {
			if _, seen := rec[name]; seen {
				continue
			}
			rec[name] = sanitize(row[c])
		}
		records[i] = rec
	}
	return records
}

func sanitize(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}

// missingTokens mark an absent value. Matching is case-sensitive, so a
// surname like "Nan" survives as text.
var missingTokens = map[string]bool{
	"": true, "NA": true, "N/A": true, "n/a": true, "#N/A": true, "<NA>": true,
	"NaN": true, "nan": true, "-NaN": true, "-nan": true,
	"NULL": true, "null": true, "None": true,
	"inf": true, "-inf": true, "+inf": true, "Inf": true, "-Inf": true, "+Inf": true,
}

// ParseCell converts raw upstream text into a typed cell value
func ParseCell(raw string) any {
	s := strings.TrimSpace(raw)
	if missingTokens[s] {
		return nil
	}
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}
	return s
}

// ParseText keeps a cell as trimmed text; only an empty cell is missing
func ParseText(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return s
}

// CellInt reports whether a cell holds a value representable as an integer
func CellInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return CellInt(f)
		}
	}
	return 0, false
}

// CellString returns a cell's text, or "" for nil
func CellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
