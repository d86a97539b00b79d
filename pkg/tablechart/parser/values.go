// Package parser reads tables from CSV, Excel and Parquet sources.
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

// ErrNoTable indicates the source holds no header row or no data region.
var ErrNoTable = errors.New("no table found")

// ErrIndexColumn indicates the requested index column is not in the header.
var ErrIndexColumn = errors.New("index column not in header")

// dateLayouts are tried in order when inferring a date index.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
	"2006-01",
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// parseDate parses s with the first matching layout.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseIndex converts raw labels to time.Time when every label is a date,
// otherwise to int64, float64 or string per label.
func parseIndex(raw []string) []interface{} {
	out := make([]interface{}, len(raw))
	if len(raw) > 0 {
		allDates := true
		for i, s := range raw {
			t, ok := parseDate(s)
			if !ok {
				allDates = false
				break
			}
			out[i] = t
		}
		if allDates {
			return out
		}
	}
	for i, s := range raw {
		out[i] = parseValue(strings.TrimSpace(s))
	}
	return out
}

// parseNumber parses a numeric cell; empty or non-numeric cells are NaN.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(f) {
		return math.NaN(), false
	}
	return f, true
}

// indexPosition returns the position of the index column in header.
// An empty name selects the first column.
func indexPosition(header []string, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrIndexColumn, name)
}

// buildTable turns a header row and string records into a table.
// Columns without any numeric cell are skipped.
func buildTable(header []string, records [][]string, indexName string) (*models.Table, error) {
	if len(header) == 0 {
		return nil, ErrNoTable
	}
	indexCol, err := indexPosition(header, indexName)
	if err != nil {
		return nil, err
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return row[col]
		}
		return ""
	}

	rawIndex := make([]string, len(records))
	for r, row := range records {
		rawIndex[r] = strings.TrimSpace(cell(row, indexCol))
	}

	table := &models.Table{
		Index: models.Index{
			Name:   strings.TrimSpace(header[indexCol]),
			Values: parseIndex(rawIndex),
		},
	}

	for c, h := range header {
		if c == indexCol {
			continue
		}
		values := make([]float64, len(records))
		numeric := false
		for r, row := range records {
			v, ok := parseNumber(cell(row, c))
			values[r] = v
			numeric = numeric || ok
		}
		if !numeric {
			continue
		}
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", c+1)
		}
		table.Columns = append(table.Columns, models.Column{Name: name, Values: values})
	}

	return table, nil
}
