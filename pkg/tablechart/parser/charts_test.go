package parser

import (
	"encoding/xml"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractChartHints(t *testing.T) {
	f := newSalesWorkbook(t)

	minY, maxY := 0.0, 20.0
	err := f.AddChart("Sheet1", "F3", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$C$3", Categories: "Sheet1!$B$4:$B$6", Values: "Sheet1!$C$4:$C$6"},
			{Name: "Sheet1!$D$3", Categories: "Sheet1!$B$4:$B$6", Values: "Sheet1!$D$4:$D$6"},
		},
		Title: []excelize.RichTextRun{{Text: "Monthly sales"}},
		YAxis: excelize.ChartAxis{
			Minimum: &minY,
			Maximum: &maxY,
			Title:   []excelize.RichTextRun{{Text: "units"}},
		},
	})
	if err != nil {
		t.Fatalf("Failed to add chart: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	hints, err := ExtractChartHints(tmpFile)
	if err != nil {
		t.Fatalf("ExtractChartHints failed: %v", err)
	}
	sheetHints := hints["Sheet1"]
	if len(sheetHints) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(sheetHints))
	}

	hint := sheetHints[0]
	if hint.ChartType != "barChart" {
		t.Errorf("Expected chart type 'barChart', got %q", hint.ChartType)
	}
	if hint.Kind != "column" {
		t.Errorf("Expected kind 'column', got %q", hint.Kind)
	}
	if hint.Title != "Monthly sales" {
		t.Errorf("Expected title 'Monthly sales', got %q", hint.Title)
	}
	if hint.YAxisTitle != "units" {
		t.Errorf("Expected y axis title 'units', got %q", hint.YAxisTitle)
	}
	if len(hint.YAxisRange) != 2 || hint.YAxisRange[0] != 0 || hint.YAxisRange[1] != 20 {
		t.Errorf("Expected y axis range [0 20], got %v", hint.YAxisRange)
	}
	if hint.SeriesCount != 2 {
		t.Errorf("Expected 2 series, got %d", hint.SeriesCount)
	}
}

func TestExtractChartHintsNoCharts(t *testing.T) {
	f := newSalesWorkbook(t)
	tmpFile := filepath.Join(t.TempDir(), "plain.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	hints, err := ExtractChartHints(tmpFile)
	if err != nil {
		t.Fatalf("ExtractChartHints failed: %v", err)
	}
	if len(hints) != 0 {
		t.Errorf("Expected no charts, got %v", hints)
	}
}

func TestParseChartXML(t *testing.T) {
	data := []byte(`<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<c:chart>
<c:title><c:tx><c:rich><a:p><a:r><a:t>Revenue </a:t></a:r><a:r><a:t>2024</a:t></a:r></a:p></c:rich></c:tx></c:title>
<c:plotArea>
<c:barChart><c:barDir val="bar"/><c:ser/></c:barChart>
<c:lineChart><c:ser/><c:ser/></c:lineChart>
<c:catAx/>
<c:valAx><c:scaling><c:max val="5"/><c:min val="-5"/></c:scaling></c:valAx>
</c:plotArea>
</c:chart>
</c:chartSpace>`)

	hint, err := parseChartXML(data)
	if err != nil {
		t.Fatalf("parseChartXML failed: %v", err)
	}
	if hint.Title != "Revenue 2024" {
		t.Errorf("Expected title 'Revenue 2024', got %q", hint.Title)
	}
	if hint.ChartType != "barChart" || hint.Kind != "bar" {
		t.Errorf("Expected barChart/bar, got %s/%s", hint.ChartType, hint.Kind)
	}
	if hint.SeriesCount != 1 {
		t.Errorf("Expected series count of the first group, got %d", hint.SeriesCount)
	}
	if len(hint.YAxisRange) != 2 || hint.YAxisRange[0] != -5 || hint.YAxisRange[1] != 5 {
		t.Errorf("Expected y axis range [-5 5], got %v", hint.YAxisRange)
	}
}

func TestEMUToPixels(t *testing.T) {
	tests := []struct {
		emu      int64
		expected int
	}{
		{0, 0},
		{9525, 1},
		{4572000, 480},
	}

	for _, tt := range tests {
		result := EMUToPixels(tt.emu)
		if result != tt.expected {
			t.Errorf("EMUToPixels(%d) = %d, expected %d", tt.emu, result, tt.expected)
		}
	}
}

func TestChartKind(t *testing.T) {
	tests := []struct {
		group    string
		barDir   string
		expected string
	}{
		{"lineChart", "", "line"},
		{"line3DChart", "", "line"},
		{"barChart", "col", "column"},
		{"barChart", "bar", "bar"},
		{"bar3DChart", "", "column"},
		{"pieChart", "", ""},
		{"scatterChart", "", ""},
	}

	for _, tt := range tests {
		el := xmlPlotElement{XMLName: xml.Name{Local: tt.group}}
		if tt.barDir != "" {
			el.BarDir = &xmlVal{Val: tt.barDir}
		}
		result := chartKind(el)
		if result != tt.expected {
			t.Errorf("chartKind(%q, %q) = %q, expected %q", tt.group, tt.barDir, result, tt.expected)
		}
	}
}

func TestParseChartXMLUnplottable(t *testing.T) {
	data := []byte(`<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart">
<c:chart><c:plotArea><c:layout/><c:pieChart><c:ser/></c:pieChart></c:plotArea></c:chart>
</c:chartSpace>`)

	hint, err := parseChartXML(data)
	if err != nil {
		t.Fatalf("parseChartXML failed: %v", err)
	}
	if hint.ChartType != "pieChart" || hint.Kind != "" {
		t.Errorf("Expected pieChart with no kind, got %s/%q", hint.ChartType, hint.Kind)
	}
}
