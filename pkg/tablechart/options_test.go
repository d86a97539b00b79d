package tablechart

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestOptionsYAML(t *testing.T) {
	opts := DefaultOptions()
	doc := `
title: Sales
ylim: [0, 100]
chart_borderColor: "#333333"
colors: ["#ff0000"]
`
	if err := yaml.Unmarshal([]byte(doc), &opts); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}

	if opts.Title != "Sales" {
		t.Errorf("Expected title 'Sales', got %q", opts.Title)
	}
	if opts.YLim == nil || opts.YLim.Min != 0 || opts.YLim.Max != 100 {
		t.Errorf("Expected ylim [0 100], got %v", opts.YLim)
	}
	if opts.XLim != nil {
		t.Errorf("Expected xlim unset, got %v", opts.XLim)
	}
	if opts.ChartBorderColor != "#333333" {
		t.Errorf("Expected border color override, got %q", opts.ChartBorderColor)
	}
	if opts.Subtitle != "Subtitle" || opts.LegendWidth != 30 {
		t.Error("Expected untouched defaults to survive decoding")
	}
}

func TestRangeDecoding(t *testing.T) {
	var r Range
	if err := json.Unmarshal([]byte(`[1, 2]`), &r); err != nil || r.Min != 1 || r.Max != 2 {
		t.Errorf("json range = %v, %v, expected [1 2]", r, err)
	}
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &r); err == nil {
		t.Error("Expected error for a 3-element range")
	}

	var opts Options
	if err := yaml.Unmarshal([]byte("xlim: [5]"), &opts); err == nil {
		t.Error("Expected error for a 1-element yaml range")
	}

	data, err := json.Marshal(NewRange(-1, 1))
	if err != nil || string(data) != "[-1,1]" {
		t.Errorf("json.Marshal(range) = %s, %v, expected [-1,1]", data, err)
	}
}
