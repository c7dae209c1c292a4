package gateway

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/mcoot/diamondstats/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseCSV reads a headed CSV body into a table. Cells of textColumns are kept
// as strings; all others are typed with model.ParseCell.
func parseCSV(body []byte, textColumns ...string) (*model.Table, error) {
	body = bytes.TrimPrefix(body, utf8BOM)

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return model.NewTable(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = string(bytes.TrimSpace([]byte(h)))
	}
	table := model.NewTable(columns)

	parsers := make([]func(string) any, len(columns))
	for i, col := range columns {
		parsers[i] = model.ParseCell
		if slices.Contains(textColumns, col) {
			parsers[i] = model.ParseText
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", table.Len()+1, err)
		}
		cells := make([]any, len(columns))
		for i := 0; i < len(rec) && i < len(columns); i++ {
			cells[i] = parsers[i](rec[i])
		}
		table.AppendRow(cells)
	}

	return table, nil
}
