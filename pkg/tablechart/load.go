package tablechart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/parser"
	"github.com/xuri/excelize/v2"
)

// LoadOptions configures table loading.
type LoadOptions struct {
	// Sheet selects the workbook sheet (xlsx only); empty selects the first sheet.
	Sheet string
	// Range is an A1 range or defined name (xlsx only); empty detects the data region.
	Range string
	// IndexColumn names the index column; empty selects the first column.
	IndexColumn string
	// UseWorkbookChart reads the first existing chart on the sheet as a hint (xlsx only).
	UseWorkbookChart bool
}

// LoadResult is a loaded table plus what was learned about its source.
type LoadResult struct {
	Table *models.Table
	// Sheet is the sheet the table came from (xlsx only).
	Sheet string
	// Hint is the first chart found on the sheet when requested.
	Hint *models.ChartHint
}

// Load reads a table from a CSV, xlsx or Parquet file, chosen by extension.
func Load(path string, opts LoadOptions) (*LoadResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewLoadError(path, "open", ErrFileNotFound)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return loadCSV(path, opts)
	case ".xlsx", ".xlsm":
		return loadXLSX(path, opts)
	case ".parquet", ".pq":
		return loadParquet(path, opts)
	default:
		return nil, NewLoadError(path, "open", ErrUnsupportedFormat)
	}
}

// LoadCSV reads a table from CSV bytes.
func LoadCSV(data []byte, indexColumn string) (*models.Table, error) {
	table, err := parser.ReadCSV(bytes.NewReader(data), indexColumn)
	if err != nil {
		return nil, NewLoadError("csv data", "csv", mapParseErr(err))
	}
	return table, nil
}

func loadCSV(path string, opts LoadOptions) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "csv", err)
	}
	defer f.Close()

	table, err := parser.ReadCSV(f, opts.IndexColumn)
	if err != nil {
		return nil, NewLoadError(path, "csv", mapParseErr(err))
	}
	return &LoadResult{Table: table}, nil
}

func loadXLSX(path string, opts LoadOptions) (*LoadResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "xlsx", err)
	}
	defer f.Close()

	table, sheet, err := parser.ReadXLSX(f, parser.XLSXOptions{
		Sheet:       opts.Sheet,
		Range:       opts.Range,
		IndexColumn: opts.IndexColumn,
	})
	if err != nil {
		return nil, NewLoadError(path, "xlsx", mapParseErr(err))
	}

	result := &LoadResult{Table: table, Sheet: sheet}
	if opts.UseWorkbookChart {
		hints, err := parser.ExtractChartHints(path)
		if err != nil {
			return nil, NewLoadError(path, "charts", err)
		}
		if sheetHints := hints[sheet]; len(sheetHints) > 0 {
			hint := sheetHints[0]
			result.Hint = &hint
		}
	}
	return result, nil
}

func loadParquet(path string, opts LoadOptions) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "parquet", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, NewLoadError(path, "parquet", err)
	}

	table, err := parser.ReadParquet(f, info.Size(), opts.IndexColumn)
	if err != nil {
		return nil, NewLoadError(path, "parquet", mapParseErr(err))
	}
	return &LoadResult{Table: table}, nil
}

func mapParseErr(err error) error {
	if errors.Is(err, parser.ErrNoTable) {
		return ErrNoTable
	}
	return err
}

// ApplyHint seeds plot options from an existing Excel chart. Title, y label,
// y range and size are taken when the hint has them; the kind is taken when
// it maps to a known kind.
func ApplyHint(hint *models.ChartHint, p *PlotOptions) {
	if hint == nil || p == nil {
		return
	}
	if k := Kind(hint.Kind); k.Valid() {
		p.Kind = SingleKind(k)
	}
	if hint.Title != "" {
		p.Options.Title = hint.Title
	}
	if hint.YAxisTitle != "" {
		p.Options.YLabel = hint.YAxisTitle
	}
	if len(hint.YAxisRange) == 2 {
		p.Options.YLim = NewRange(hint.YAxisRange[0], hint.YAxisRange[1])
	}
	if hint.W != nil && hint.H != nil {
		w, h := *hint.W, *hint.H
		p.Options.Width, p.Options.Height = &w, &h
	}
}
