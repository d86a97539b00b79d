package tablechart

import (
	"fmt"
	"log/slog"

	"github.com/tiendc/go-deepcopy"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

const yLabelFormatter models.JSFunction = `function () {
    return this.value;
}`

// Resolve builds the normalized settings for opts.
// Every call returns a fresh tree; nothing is shared with opts or earlier results.
func Resolve(opts Options) models.Settings {
	s := models.Settings{
		Title:    models.Text{Text: opts.Title},
		Subtitle: models.Text{Text: opts.Subtitle},
		Chart: models.ChartStyle{
			BorderColor:  opts.ChartBorderColor,
			BorderWidth:  opts.ChartBorderWidth,
			BorderRadius: opts.ChartBorderRadius,
			ZoomType:     opts.ChartZoomType,
			Shadow:       opts.ChartShadow,
		},
		XAxis: models.XAxis{
			Title:         models.Text{Text: axisTitle(opts.XLabel, opts.XDim)},
			Reversed:      opts.XAxisReversed,
			MaxPadding:    0.05,
			ShowLastLabel: true,
		},
		YAxis: models.YAxis{
			Title: models.Text{Text: axisTitle(opts.YLabel, opts.YDim)},
			Labels: models.AxisLabels{
				Formatter: yLabelFormatter,
				Overflow:  "justify",
			},
			LineWidth: 2,
			Opposite:  opts.YAxisOpposite,
		},
		Legend: models.Legend{
			Enabled:        opts.LegendEnabled,
			Align:          opts.LegendAlign,
			VerticalAlign:  opts.LegendVerticalAlign,
			Layout:         opts.LegendLayout,
			ItemHoverStyle: models.HoverStyle{Color: opts.LegendItemHoverStyleColor},
			Width:          opts.LegendWidth,
			Floating:       opts.LegendFloating,
		},
		Tooltip: models.Tooltip{
			PointFormat: `<br><span style="color:{series.color}">{series.name}</span>: {point.y} ` + opts.YTooltipSuffix,
			Shared:      opts.TooltipShared,
			Crosshairs:  opts.TooltipCrosshairs,
		},
		PlotOptions: models.PlotOptions{
			Series: models.SeriesOptions{
				BorderWidth: opts.SeriesBorderWidth,
				DataLabels: models.DataLabels{
					Enabled: opts.SeriesDataLabelsEnabled,
					Format:  "{point.y:.1f}",
					Color:   "#FF0000",
				},
			},
		},
		Navigation: models.Navigation{
			ButtonOptions: models.ButtonOptions{Align: opts.ButtonOptionsAlign},
		},
	}

	if opts.XLim != nil {
		s.XAxis.Min, s.XAxis.Max = rangeBounds(*opts.XLim)
	}
	if opts.YLim != nil {
		s.YAxis.Min, s.YAxis.Max = rangeBounds(*opts.YLim)
	}

	if opts.Colors != nil {
		s.Colors = append([]string{}, opts.Colors...)
	}

	if opts.XPlotBands {
		s.XAxis.PlotBands = xPlotBands(opts)
	}
	if opts.YPlotBands {
		s.YAxis.PlotBands = []models.PlotBand{{
			From:  opts.YBandFrom,
			To:    opts.YBandTo,
			Color: opts.YBandColor,
			Label: models.PlotBandLabel{
				Text:      opts.YBandLabel,
				Align:     opts.YBandLabelAlign,
				TextAlign: opts.YBandLabelAlign,
				Color:     opts.YBandLabelColor,
			},
		}}
	}

	return s
}

func axisTitle(label, dim string) string {
	if dim == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, dim)
}

func rangeBounds(r Range) (*float64, *float64) {
	min, max := r.Min, r.Max
	return &min, &max
}

// copyPlotBands deep-copies caller band objects so results never alias them.
var copyPlotBands = func(dst *[]map[string]interface{}, src []map[string]interface{}) error {
	return deepcopy.Copy(dst, src)
}

// xPlotBands returns the caller's x bands verbatim, or nil when they cannot
// be copied.
func xPlotBands(opts Options) *[]map[string]interface{} {
	bands := make([]map[string]interface{}, 0, len(opts.XAxisPlotBands))
	if len(opts.XAxisPlotBands) == 0 {
		return &bands
	}
	if err := copyPlotBands(&bands, opts.XAxisPlotBands); err != nil {
		slog.Warn("x plot bands dropped", "error", err)
		return nil
	}
	return &bands
}
