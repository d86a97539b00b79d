// Package tablechart builds Highcharts option trees from tables.
package tablechart

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Range is an axis (min, max) pair. It is written as [min, max] in YAML and JSON.
type Range struct {
	Min float64
	Max float64
}

// NewRange returns a pointer to a Range, for use in Options.
func NewRange(min, max float64) *Range {
	return &Range{Min: min, Max: max}
}

func (r *Range) fromSlice(v []float64) error {
	if len(v) != 2 {
		return fmt.Errorf("range must have 2 values, got %d", len(v))
	}
	r.Min, r.Max = v[0], v[1]
	return nil
}

// UnmarshalYAML decodes a [min, max] sequence.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var v []float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	return r.fromSlice(v)
}

// MarshalYAML encodes the range as [min, max].
func (r Range) MarshalYAML() (interface{}, error) {
	return []float64{r.Min, r.Max}, nil
}

// UnmarshalJSON decodes a [min, max] array.
func (r *Range) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return r.fromSlice(v)
}

// MarshalJSON encodes the range as [min, max].
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{r.Min, r.Max})
}

// Options is the bag of visual options resolved into chart settings.
// Start from DefaultOptions; the zero value is not a useful configuration.
type Options struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`

	XLabel         string `yaml:"xlabel" json:"xlabel"`
	XLim           *Range `yaml:"xlim" json:"xlim"`
	XDim           string `yaml:"xdim" json:"xdim"`
	XTooltipSuffix string `yaml:"xtooltipsuffix" json:"xtooltipsuffix"`
	XAxisReversed  bool   `yaml:"xAxis_reversed" json:"xAxis_reversed"`

	YLabel         string `yaml:"ylabel" json:"ylabel"`
	YLim           *Range `yaml:"ylim" json:"ylim"`
	YDim           string `yaml:"ydim" json:"ydim"`
	YTooltipSuffix string `yaml:"ytooltipsuffix" json:"ytooltipsuffix"`
	YAxisOpposite  bool   `yaml:"yAxis_opposite" json:"yAxis_opposite"`

	ChartBorderColor  string `yaml:"chart_borderColor" json:"chart_borderColor"`
	ChartBorderRadius int    `yaml:"chart_borderRadius" json:"chart_borderRadius"`
	ChartBorderWidth  int    `yaml:"chart_borderWidth" json:"chart_borderWidth"`
	ChartShadow       bool   `yaml:"chart_shadow" json:"chart_shadow"`
	ChartZoomType     string `yaml:"chart_zoomType" json:"chart_zoomType"`

	SeriesBorderWidth       int  `yaml:"series_borderWidth" json:"series_borderWidth"`
	SeriesDataLabelsEnabled bool `yaml:"series_dataLabels_enabled" json:"series_dataLabels_enabled"`

	LegendAlign               string `yaml:"legend_align" json:"legend_align"`
	LegendEnabled             bool   `yaml:"legend_enabled" json:"legend_enabled"`
	LegendFloating            bool   `yaml:"legend_floating" json:"legend_floating"`
	LegendItemHoverStyleColor string `yaml:"legend_itemHoverStyle_color" json:"legend_itemHoverStyle_color"`
	LegendLayout              string `yaml:"legend_layout" json:"legend_layout"`
	LegendVerticalAlign       string `yaml:"legend_verticalAlign" json:"legend_verticalAlign"`
	LegendWidth               int    `yaml:"legend_width" json:"legend_width"`

	TooltipCrosshairs bool `yaml:"tooltip_crosshairs" json:"tooltip_crosshairs"`
	TooltipShared     bool `yaml:"tooltip_shared" json:"tooltip_shared"`

	ButtonOptionsAlign string `yaml:"buttonOptions_align" json:"buttonOptions_align"`

	// Colors overrides the series palette when non-nil.
	Colors []string `yaml:"colors" json:"colors"`

	XPlotBands bool `yaml:"x_plotBands" json:"x_plotBands"`
	// XAxisPlotBands are emitted verbatim when XPlotBands is set.
	XAxisPlotBands []map[string]interface{} `yaml:"xAxis_plotBands" json:"xAxis_plotBands"`

	YPlotBands      bool    `yaml:"y_plotBands" json:"y_plotBands"`
	YBandColor      string  `yaml:"yBand_color" json:"yBand_color"`
	YBandFrom       float64 `yaml:"yBand_from" json:"yBand_from"`
	YBandTo         float64 `yaml:"yBand_to" json:"yBand_to"`
	YBandLabel      string  `yaml:"yBand_label" json:"yBand_label"`
	YBandLabelAlign string  `yaml:"yBand_labelAlign" json:"yBand_labelAlign"`
	YBandLabelColor string  `yaml:"yBand_labelColor" json:"yBand_labelColor"`

	// Width and Height go to the chart constructor only.
	Width  *int `yaml:"width" json:"width"`
	Height *int `yaml:"height" json:"height"`
}

// DefaultOptions returns the default option bag.
func DefaultOptions() Options {
	return Options{
		Title:    "Title",
		Subtitle: "Subtitle",

		XLabel: "xLabel",
		YLabel: "yLabel",

		ChartBorderColor: "#000000",
		ChartZoomType:    "xy",

		LegendAlign:               "center",
		LegendEnabled:             true,
		LegendItemHoverStyleColor: "#000",
		LegendLayout:              "horizontal",
		LegendVerticalAlign:       "bottom",
		LegendWidth:               30,

		TooltipCrosshairs: true,

		ButtonOptionsAlign: "left",

		YBandColor:      "#FCFFC5",
		YBandTo:         5,
		YBandLabelAlign: "right",
		YBandLabelColor: "#BD0200",
	}
}
