package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"", nil},
		{"  ", nil},
		{"NaN", nil},
		{"nan", nil},
		{"inf", nil},
		{"42", int64(42)},
		{"-3", int64(-3)},
		{"95.4", 95.4},
		{"2024-04-01", "2024-04-01"},
		{" Mike ", "Mike"},
		{"W-wo", "W-wo"},
		{"NA", nil},
		{"None", nil},
		{"Nan", "Nan"},
		{"Na", "Na"},
		{"NONE", "NONE"},
		{"Infinity", "Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCell(tt.raw))
		})
	}
}

func TestParseText(t *testing.T) {
	assert.Nil(t, ParseText("  "))
	assert.Equal(t, "Nan", ParseText(" Nan "))
	assert.Equal(t, "None", ParseText("None"))
	assert.Equal(t, "007", ParseText("007"))
}

func TestCellInt(t *testing.T) {
	n, ok := CellInt(int64(545361))
	assert.True(t, ok)
	assert.Equal(t, int64(545361), n)

	n, ok = CellInt(545361.0)
	assert.True(t, ok)
	assert.Equal(t, int64(545361), n)

	n, ok = CellInt("660271")
	assert.True(t, ok)
	assert.Equal(t, int64(660271), n)

	_, ok = CellInt(1.5)
	assert.False(t, ok)

	_, ok = CellInt("abc")
	assert.False(t, ok)

	_, ok = CellInt(nil)
	assert.False(t, ok)

	_, ok = CellInt(math.NaN())
	assert.False(t, ok)
}

func TestRecordsSerializeMissingAsNull(t *testing.T) {
	tbl := NewTable([]string{"game_date", "launch_speed", "events"})
	tbl.AppendRow([]any{"2024-04-01", 101.2, "single"})
	tbl.AppendRow([]any{"2024-04-02", math.NaN()})

	data, err := json.Marshal(tbl.Records())
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 2)

	second := out[1]
	assert.Contains(t, second, "launch_speed")
	assert.Nil(t, second["launch_speed"])
	assert.Contains(t, second, "events")
	assert.Nil(t, second["events"])
	assert.NotContains(t, string(data), "NaN")
}

func TestRecordsOnNilTable(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Records())
}

func TestFilterAndProject(t *testing.T) {
	tbl := NewTable([]string{"player_id", "xwoba", "year"})
	tbl.AppendRow([]any{int64(1), int64(90), int64(2024)})
	tbl.AppendRow([]any{int64(2), int64(40), int64(2024)})

	filtered := tbl.Filter(func(i int) bool {
		id, _ := CellInt(tbl.Value(i, "player_id"))
		return id == 2
	})
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, int64(40), filtered.Value(0, "xwoba"))

	projected := tbl.Project([]string{"xwoba", "missing"})
	assert.Equal(t, []string{"xwoba", "missing"}, projected.Columns)
	assert.Equal(t, []any{int64(90), nil}, projected.Rows[0])
}
