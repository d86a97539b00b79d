package parser

import (
	"fmt"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// XLSXOptions selects the table inside a workbook.
type XLSXOptions struct {
	// Sheet is the sheet name; empty selects the first sheet.
	Sheet string
	// Range is an A1 range or a defined name. When empty, the sheet print
	// area is used, then the detected data region.
	Range string
	// IndexColumn is the index header; empty selects the first column.
	IndexColumn string
}

// RegionParams holds thresholds for data region detection.
type RegionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultRegionParams returns default region detection thresholds.
func DefaultRegionParams() RegionParams {
	return RegionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// ReadXLSX reads a table from an open workbook. It returns the table and the
// name of the sheet it was read from.
func ReadXLSX(f *excelize.File, opts XLSXOptions) (*models.Table, string, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", ErrNoTable
		}
		sheet = sheets[0]
	}

	var region *Region
	if opts.Range != "" {
		refSheet, r, err := ParseRange(opts.Range)
		if err != nil {
			var ok bool
			refSheet, r, ok = lookupDefinedName(f, opts.Range, sheet)
			if !ok {
				return nil, sheet, fmt.Errorf("range %q is neither a cell range nor a defined name", opts.Range)
			}
		}
		if refSheet != "" {
			sheet = refSheet
		}
		region = r
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, sheet, fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, sheet, err
	}

	if region == nil {
		// A print area usually frames the table exactly.
		if _, r, ok := lookupDefinedName(f, printAreaName, sheet); ok {
			region = r
		}
	}
	if region == nil {
		region = DetectRegion(rows, DefaultRegionParams())
		if region == nil {
			return nil, sheet, ErrNoTable
		}
	}

	header, records := sliceRegion(rows, *region)
	table, err := buildTable(header, records, opts.IndexColumn)
	if err != nil {
		return nil, sheet, err
	}
	return table, sheet, nil
}

// DetectRegion returns the bounding box of non-empty cells, or nil when the
// sheet is too sparse to hold a table.
func DetectRegion(rows [][]string, params RegionParams) *Region {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}
	if float64(nonEmptyCells)/float64(totalCells) < params.DensityMin {
		return nil
	}

	return &Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
}

// sliceRegion returns the header row and data rows inside region.
func sliceRegion(rows [][]string, region Region) ([]string, [][]string) {
	cols := func(row []string) []string {
		out := make([]string, region.C2-region.C1+1)
		for c := range out {
			if idx := region.C1 - 1 + c; idx < len(row) {
				out[c] = row[idx]
			}
		}
		return out
	}

	var header []string
	var records [][]string
	for r := region.R1 - 1; r <= region.R2-1 && r < len(rows); r++ {
		if r == region.R1-1 {
			header = cols(rows[r])
			continue
		}
		row := cols(rows[r])
		if isBlank(row) {
			continue
		}
		records = append(records, row)
	}
	return header, records
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
