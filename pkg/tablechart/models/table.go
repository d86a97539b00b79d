// Package models defines data structures for table-driven chart building.
package models

import (
	"math"
	"time"
)

// Column represents a named sequence of numeric values aligned to a table index.
type Column struct {
	// Name is the column header; it becomes the series name.
	Name string `json:"name"`
	// Values holds one value per index position. NaN marks a missing cell.
	Values []float64 `json:"values"`
}

// Index represents the ordered row labels shared by every column of a table.
type Index struct {
	// Name is the header of the index column (may be empty).
	Name string `json:"name,omitempty"`
	// Values holds time.Time, int64, float64 or string labels.
	Values []interface{} `json:"values"`
}

// Len returns the number of index positions.
func (ix Index) Len() int {
	return len(ix.Values)
}

// IsAllDates reports whether the index is non-empty and every label is a time.Time.
func (ix Index) IsAllDates() bool {
	if len(ix.Values) == 0 {
		return false
	}
	for _, v := range ix.Values {
		if _, ok := v.(time.Time); !ok {
			return false
		}
	}
	return true
}

// Table represents named columns sharing one row index.
type Table struct {
	// Index is the shared row index.
	Index Index `json:"index"`
	// Columns are the value columns in source order.
	Columns []Column `json:"columns"`
}

// NumColumns returns the number of value columns.
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// Missing reports whether v marks a missing cell.
func Missing(v float64) bool {
	return math.IsNaN(v)
}
