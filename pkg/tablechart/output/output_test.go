package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

func sampleChart(stock bool) *models.Chart {
	var c *models.Chart
	if stock {
		c = models.NewHighstock(nil, nil)
	} else {
		c = models.NewHighchart(nil, nil)
	}
	c.SetXAxisType("datetime")
	c.Settings.Title.Text = "Daily <totals>"
	c.Settings.YAxis.Labels.Formatter = "function () { return this.value; }"
	c.Settings.Legend.Enabled = true
	c.Settings.Colors = []string{"#1492fb", "#27662a"}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := make([]interface{}, 3)
	for i := range data {
		data[i] = []interface{}{start.AddDate(0, 0, i).UnixMilli(), float64(i*i) + 1}
	}
	c.AddSeries(models.Series{Name: "a", Type: "line", Data: data})
	return c
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleChart(false), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("ToJSON produced invalid JSON: %v", err)
	}
	if _, ok := tree["series"]; !ok {
		t.Error("Expected a series key")
	}
	if tree["xAxis"].(map[string]interface{})["type"] != "datetime" {
		t.Errorf("Expected datetime x axis, got %v", tree["xAxis"])
	}

	pretty, err := ToJSON(sampleChart(false), true)
	if err != nil {
		t.Fatalf("ToJSON(pretty) failed: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n  \"")) {
		t.Error("Expected indented output")
	}
}

func TestToHTML(t *testing.T) {
	page, err := ToHTML(sampleChart(false), DefaultHTMLOptions())
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		`<script src="https://code.highcharts.com/highcharts.js"></script>`,
		`<div id="container"></div>`,
		`new Highcharts.Chart(`,
		`key === "formatter"`,
		`<title>Daily &lt;totals&gt;</title>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
	if strings.Contains(html, "<totals>") {
		t.Error("Expected the title to be escaped")
	}
}

func TestToHTMLStock(t *testing.T) {
	page, err := ToHTML(sampleChart(true), HTMLOptions{StockScriptURL: "https://example.com/highstock.js"})
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, `src="https://example.com/highstock.js"`) {
		t.Error("Expected the stock script URL")
	}
	if !strings.Contains(html, "new Highcharts.StockChart(") {
		t.Error("Expected the stock constructor")
	}
}

func TestRenderPreview(t *testing.T) {
	for _, format := range []string{"png", "svg"} {
		var buf bytes.Buffer
		if err := RenderPreview(sampleChart(false), format, &buf); err != nil {
			t.Errorf("RenderPreview(%s) failed: %v", format, err)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("RenderPreview(%s) wrote nothing", format)
		}
	}

	var svg bytes.Buffer
	RenderPreview(sampleChart(false), "svg", &svg)
	if !strings.Contains(svg.String(), "<svg") {
		t.Error("Expected SVG markup")
	}
}

func TestRenderPreviewCategories(t *testing.T) {
	c := models.NewHighchart(nil, nil)
	c.Settings.XAxis.Categories = []interface{}{"north", "south", "east"}
	c.AddSeries(models.Series{Name: "a", Type: "column", Data: []interface{}{1.5, nil, 3.25}})
	c.AddSeries(models.Series{Name: "b", Type: "line", Data: []interface{}{2.0, 4.0, 1.0}})

	var buf bytes.Buffer
	if err := RenderPreview(c, "png", &buf); err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
}

func TestRenderPreviewErrors(t *testing.T) {
	c := models.NewHighchart(nil, nil)
	c.AddSeries(models.Series{Name: "a", Type: "line", Data: []interface{}{[]interface{}{int64(1), 2.0}}})

	var buf bytes.Buffer
	if err := RenderPreview(c, "png", &buf); !errors.Is(err, ErrNotEnoughPoints) {
		t.Errorf("RenderPreview(one point) error = %v, expected ErrNotEnoughPoints", err)
	}
	if err := RenderPreview(sampleChart(false), "gif", &buf); err == nil {
		t.Error("Expected error for an unsupported format")
	}
}

func TestPositionalPoints(t *testing.T) {
	xs, ys := positionalPoints([]interface{}{1.0, nil, int64(3)})
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 3 || ys[1] != 3 {
		t.Errorf("positionalPoints = %v, %v, expected [1 3], [1 3]", xs, ys)
	}
}
