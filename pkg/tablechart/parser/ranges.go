package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Region represents cell coordinate bounds (1-based, inclusive).
type Region struct {
	R1 int
	C1 int
	R2 int
	C2 int
}

// String returns the region in A1:D10 notation.
func (r Region) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}

// ParseRange parses a reference such as A1:D10, $A$1:$D$10 or 'Sheet 1'!A1:D10.
// The sheet name is empty when the reference has no sheet prefix.
func ParseRange(ref string) (string, *Region, error) {
	ref = strings.TrimSpace(ref)

	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	region := parseRangeToRegion(ref)
	if region == nil {
		return "", nil, fmt.Errorf("invalid range %q", ref)
	}
	return sheet, region, nil
}

// parseRangeToRegion parses a range string like $A$1:$D$10.
func parseRangeToRegion(rangeStr string) *Region {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}
	if endRow < startRow || endCol < startCol {
		return nil
	}

	return &Region{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}

// lookupDefinedName resolves a workbook defined name to a sheet and region.
// Names scoped to a sheet only match when sheet is that sheet.
func lookupDefinedName(f *excelize.File, name, sheet string) (string, *Region, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheet {
			continue
		}
		// Multi-area names use the first area.
		first := strings.Split(dn.RefersTo, ",")[0]
		refSheet, region, err := ParseRange(strings.TrimPrefix(first, "="))
		if err != nil {
			continue
		}
		return refSheet, region, true
	}
	return "", nil, false
}
