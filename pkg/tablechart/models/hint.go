package models

// ChartHint represents an existing Excel chart whose metadata can seed chart options.
type ChartHint struct {
	// Name is the drawing object name of the chart.
	Name string `json:"name"`
	// ChartType is the OOXML chart group (e.g., barChart, lineChart).
	ChartType string `json:"chart_type"`
	// Kind is the matching series kind (line, bar, column), empty when there is none.
	Kind string `json:"kind,omitempty"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the value axis [min, max] when both are fixed.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// W is the chart width in pixels (nil if unknown).
	W *int `json:"w,omitempty"`
	// H is the chart height in pixels (nil if unknown).
	H *int `json:"h,omitempty"`
	// SeriesCount is the number of series defined on the chart.
	SeriesCount int `json:"series_count"`
}
