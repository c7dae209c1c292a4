package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "-", formatCell(nil))
	assert.Equal(t, "101", formatCell(float64(101)))
	assert.Equal(t, "0.312", formatCell(0.312))
	assert.Equal(t, "FF", formatCell("FF"))
	assert.Equal(t, "true", formatCell(true))
}

func TestPrintRowsUsesSortedUnionOfColumns(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("text", nil, &buf).Print(Rows{
		{"b": "x", "a": float64(1)},
		{"c": nil},
	})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 3)
	assert.Equal(t, []string{"a", "b", "c"}, fields(lines[0]))
	assert.Equal(t, []string{"1", "x", "-"}, fields(lines[1]))
	assert.Equal(t, []string{"-", "-", "-"}, fields(lines[2]))
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", nil, &buf)

	out.Print(Rows{})
	out.Print([]Player{})

	assert.Equal(t, "No rows\nNo players found\n", buf.String())
}

func fields(line []byte) []string {
	var out []string
	for _, f := range bytes.Fields(line) {
		out = append(out, string(f))
	}
	return out
}

func TestPrintStatusText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", nil, &buf)

	out.Print(IndexStatus{Ready: false, Error: "fetch roster: upstream request failed"})
	out.Print(HealthResult{Status: "ok", IndexReady: true})

	assert.Equal(t, "Ready: no\nPlayers: 0\nDropped: 0\nError: fetch roster: upstream request failed\n"+
		"Status: ok\nIndex ready: yes\n", buf.String())
}
