package tablechart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file extension has no table reader.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// ErrNoTable indicates the source holds no header row or no data region.
var ErrNoTable = errors.New("no table found")

// ErrIndexColumn indicates the requested index column is not in the table header.
var ErrIndexColumn = parser.ErrIndexColumn

// ErrLengthMismatch indicates a per-column list or column whose length differs from the table shape.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrUnknownKind indicates a chart kind outside line, bar, column and line_w_col.
var ErrUnknownKind = errors.New("unknown chart kind")

// ErrInvalidYAxis indicates a y-axis index below 1.
var ErrInvalidYAxis = errors.New("invalid y-axis index")

// LoadError represents an error while reading a table source.
type LoadError struct {
	Source    string
	Component string // "csv", "xlsx", "parquet", "charts"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, component string, err error) *LoadError {
	return &LoadError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
