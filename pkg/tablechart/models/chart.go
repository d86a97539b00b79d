package models

import (
	"encoding/json"
	"fmt"
)

// Constructor is the Highcharts constructor a chart is rendered with.
type Constructor string

const (
	// ConstructorChart renders with Highcharts.Chart.
	ConstructorChart Constructor = "Chart"
	// ConstructorStock renders with Highcharts.StockChart.
	ConstructorStock Constructor = "StockChart"
)

// Series represents one named, typed sequence of plotted values.
type Series struct {
	// Name is the series display name.
	Name string `json:"name"`
	// Type is the Highcharts series type (line, bar, column).
	Type string `json:"type"`
	// YAxis is the zero-based index of the y axis the series is drawn against.
	YAxis int `json:"yAxis"`
	// Data holds flat values or [x, y] pairs; missing values are nil.
	Data []interface{} `json:"data"`
}

// Chart accumulates settings and series before serialization.
// A Chart is owned by one caller and is not safe for concurrent use.
type Chart struct {
	// Constructor selects Highcharts.Chart or Highcharts.StockChart.
	Constructor Constructor
	// Settings is the option tree, without series.
	Settings Settings
	// Series holds the appended series in insertion order.
	Series []Series
}

// NewHighchart creates a standard chart; width and height are optional pixel sizes.
func NewHighchart(width, height *int) *Chart {
	return newChart(ConstructorChart, width, height)
}

// NewHighstock creates a stock chart; width and height are optional pixel sizes.
func NewHighstock(width, height *int) *Chart {
	return newChart(ConstructorStock, width, height)
}

func newChart(ctor Constructor, width, height *int) *Chart {
	c := &Chart{Constructor: ctor}
	c.Settings.Chart.Width = copyInt(width)
	c.Settings.Chart.Height = copyInt(height)
	return c
}

// IsStock reports whether the chart renders as a stock chart.
func (c *Chart) IsStock() bool {
	return c.Constructor == ConstructorStock
}

// AddSeries appends a series and returns the chart for chaining.
func (c *Chart) AddSeries(s Series) *Chart {
	c.Series = append(c.Series, s)
	return c
}

// SetXAxisType sets the x-axis type (e.g. "datetime").
func (c *Chart) SetXAxisType(axisType string) {
	c.Settings.XAxis.Type = axisType
}

// ApplySettings merges s into the chart. The x-axis type and the constructor
// size survive unless s sets them itself.
func (c *Chart) ApplySettings(s Settings) {
	prev := c.Settings
	c.Settings = s
	if c.Settings.XAxis.Type == "" {
		c.Settings.XAxis.Type = prev.XAxis.Type
	}
	if c.Settings.Chart.Width == nil {
		c.Settings.Chart.Width = prev.Chart.Width
	}
	if c.Settings.Chart.Height == nil {
		c.Settings.Chart.Height = prev.Chart.Height
	}
}

// MarshalJSON writes the full option tree with a "series" key.
func (c *Chart) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(c.Settings)
	if err != nil {
		return nil, err
	}
	var tree map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("chart settings: %w", err)
	}

	series := c.Series
	if series == nil {
		series = []Series{}
	}
	seriesJSON, err := json.Marshal(series)
	if err != nil {
		return nil, err
	}
	tree["series"] = seriesJSON

	return json.Marshal(tree)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
