package models

import "encoding/json"

// JSFunction is JavaScript source stored as a string option value.
// HTML output revives it into a function; JSON output keeps it as text.
type JSFunction string

// Text is an option section holding only a text value (title, subtitle, axis title).
type Text struct {
	Text string `json:"text"`
}

// ChartStyle holds the chart-level options of the option tree.
type ChartStyle struct {
	BorderColor  string `json:"borderColor"`
	BorderWidth  int    `json:"borderWidth"`
	BorderRadius int    `json:"borderRadius"`
	ZoomType     string `json:"zoomType"`
	Shadow       bool   `json:"shadow"`

	// Width and Height are set by the chart constructor only.
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}

// PlotBandLabel is the label drawn inside a plot band.
type PlotBandLabel struct {
	Text      string `json:"text"`
	Align     string `json:"align"`
	TextAlign string `json:"textAlign"`
	Color     string `json:"color"`
}

// PlotBand is a shaded range annotation on an axis.
type PlotBand struct {
	From  float64       `json:"from"`
	To    float64       `json:"to"`
	Color string        `json:"color"`
	Label PlotBandLabel `json:"label"`
}

// XAxis holds the x-axis options.
type XAxis struct {
	// Type is "datetime" for date-indexed tables, empty otherwise.
	Type          string   `json:"type,omitempty"`
	Title         Text     `json:"title"`
	Reversed      bool     `json:"reversed"`
	MaxPadding    float64  `json:"maxPadding"`
	ShowLastLabel bool     `json:"showLastLabel"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`

	// PlotBands holds the caller's band objects. Nil when x plot bands are off;
	// an empty list is still written as [].
	PlotBands *[]map[string]interface{} `json:"plotBands,omitempty"`
	// Categories is the shared category axis for grouped bar/column charts.
	Categories []interface{} `json:"categories,omitempty"`
}

// AxisLabels holds axis label formatting.
type AxisLabels struct {
	Formatter JSFunction `json:"formatter,omitempty"`
	Overflow  string     `json:"overflow,omitempty"`
}

// YAxis holds the y-axis options.
type YAxis struct {
	Title     Text       `json:"title"`
	Labels    AxisLabels `json:"labels"`
	LineWidth int        `json:"lineWidth"`
	Opposite  bool       `json:"opposite"`
	Min       *float64   `json:"min,omitempty"`
	Max       *float64   `json:"max,omitempty"`
	PlotBands []PlotBand `json:"plotBands,omitempty"`
}

// HoverStyle is the legend item hover style.
type HoverStyle struct {
	Color string `json:"color"`
}

// Legend holds legend placement options.
type Legend struct {
	Enabled        bool       `json:"enabled"`
	Align          string     `json:"align"`
	VerticalAlign  string     `json:"verticalAlign"`
	Layout         string     `json:"layout"`
	ItemHoverStyle HoverStyle `json:"itemHoverStyle"`
	Width          int        `json:"width"`
	Floating       bool       `json:"floating"`
}

// Tooltip holds tooltip options.
type Tooltip struct {
	PointFormat string `json:"pointFormat"`
	Shared      bool   `json:"shared"`
	Crosshairs  bool   `json:"crosshairs"`
}

// DataLabels holds series data label formatting.
type DataLabels struct {
	Enabled bool   `json:"enabled"`
	Format  string `json:"format"`
	Color   string `json:"color"`
}

// SeriesOptions holds options applied to every series.
type SeriesOptions struct {
	BorderWidth int        `json:"borderWidth"`
	DataLabels  DataLabels `json:"dataLabels"`
}

// PlotOptions holds per-series-type options.
type PlotOptions struct {
	Series SeriesOptions `json:"series"`
}

// ButtonOptions holds export button placement.
type ButtonOptions struct {
	Align string `json:"align"`
}

// Navigation holds navigation options.
type Navigation struct {
	ButtonOptions ButtonOptions `json:"buttonOptions"`
}

// Settings is the normalized option tree handed to the charting library.
type Settings struct {
	Title    Text       `json:"title"`
	Subtitle Text       `json:"subtitle"`
	Chart    ChartStyle `json:"chart"`
	XAxis    XAxis      `json:"xAxis"`
	YAxis    YAxis      `json:"yAxis"`

	// SecondaryYAxes are appended after YAxis; when present yAxis serializes as a list.
	SecondaryYAxes []YAxis `json:"-"`

	Legend      Legend      `json:"legend"`
	Tooltip     Tooltip     `json:"tooltip"`
	PlotOptions PlotOptions `json:"plotOptions"`
	Navigation  Navigation  `json:"navigation"`
	Colors      []string    `json:"colors,omitempty"`
}

// YAxes returns the primary y axis followed by the secondary ones.
func (s Settings) YAxes() []YAxis {
	return append([]YAxis{s.YAxis}, s.SecondaryYAxes...)
}

// MarshalJSON writes yAxis as an object, or as a list when secondary axes exist.
func (s Settings) MarshalJSON() ([]byte, error) {
	type plain Settings
	if len(s.SecondaryYAxes) == 0 {
		return json.Marshal(plain(s))
	}
	return json.Marshal(struct {
		plain
		YAxis []YAxis `json:"yAxis"`
	}{plain(s), s.YAxes()})
}
