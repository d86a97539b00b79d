package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughPoints indicates no series has the two points a preview needs.
var ErrNotEnoughPoints = errors.New("preview needs at least 2 points in a series")

// Preview sizes used when the chart sets none.
const (
	DefaultPreviewWidth  = 1024
	DefaultPreviewHeight = 512
)

// RenderPreview draws a static approximation of chart as "png" or "svg".
// Date-indexed line series become time series; category charts are drawn on
// a positional axis labeled with the categories. Series with fewer than two
// points are left out.
func RenderPreview(c *models.Chart, format string, w io.Writer) error {
	var provider chart.RendererProvider
	switch strings.ToLower(format) {
	case "png":
		provider = chart.PNG
	case "svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("unsupported preview format %q", format)
	}

	settings := c.Settings
	categories := settings.XAxis.Categories
	datetime := settings.XAxis.Type == "datetime" && len(categories) == 0

	var series []chart.Series
	for i, s := range c.Series {
		st := seriesStyle(s, seriesColor(settings.Colors, i))
		if len(categories) > 0 || !isPairs(s.Data) {
			xs, ys := positionalPoints(s.Data)
			if len(xs) < 2 {
				continue
			}
			series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
			continue
		}
		if datetime {
			ts, ys := timePoints(s.Data)
			if len(ts) < 2 {
				continue
			}
			series = append(series, chart.TimeSeries{Name: s.Name, XValues: ts, YValues: ys, Style: st})
			continue
		}
		xs, ys := pairPoints(s.Data)
		if len(xs) < 2 {
			continue
		}
		series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
	}
	if len(series) == 0 {
		return ErrNotEnoughPoints
	}

	ch := chart.Chart{
		Title:      settings.Title.Text,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		Width:      DefaultPreviewWidth,
		Height:     DefaultPreviewHeight,
		XAxis:      previewXAxis(settings.XAxis, datetime),
		YAxis:      chart.YAxis{Name: settings.YAxis.Title.Text, Range: axisRange(settings.YAxis.Min, settings.YAxis.Max)},
		Series:     series,
	}
	if settings.Chart.Width != nil && *settings.Chart.Width > 0 {
		ch.Width = *settings.Chart.Width
	}
	if settings.Chart.Height != nil && *settings.Chart.Height > 0 {
		ch.Height = *settings.Chart.Height
	}
	if settings.Legend.Enabled {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	return ch.Render(provider, w)
}

func previewXAxis(axis models.XAxis, datetime bool) chart.XAxis {
	xa := chart.XAxis{Name: axis.Title.Text}
	if n := len(axis.Categories); n > 0 {
		ticks := make([]chart.Tick, n)
		for i, c := range axis.Categories {
			ticks[i] = chart.Tick{Value: float64(i + 1), Label: fmt.Sprint(c)}
		}
		xa.Ticks = ticks
		xa.Range = &chart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5}
		return xa
	}
	if datetime {
		xa.ValueFormatter = chart.TimeDateValueFormatter
	}
	if r := axisRange(axis.Min, axis.Max); r != nil {
		xa.Range = r
	}
	return xa
}

func axisRange(min, max *float64) chart.Range {
	if min == nil || max == nil || *max <= *min {
		return nil
	}
	return &chart.ContinuousRange{Min: *min, Max: *max}
}

// seriesStyle draws bars and columns as dots and lines as strokes.
func seriesStyle(s models.Series, col drawing.Color) chart.Style {
	if s.Type == "bar" || s.Type == "column" {
		return chart.Style{
			StrokeWidth: 0,
			DotWidth:    4,
			DotColor:    col,
		}
	}
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}

func seriesColor(colors []string, i int) drawing.Color {
	if len(colors) == 0 {
		return chart.GetDefaultColor(i)
	}
	return drawing.ColorFromHex(strings.TrimPrefix(colors[i%len(colors)], "#"))
}

func isPairs(data []interface{}) bool {
	for _, d := range data {
		if _, ok := d.([]interface{}); ok {
			return true
		}
	}
	return false
}

// positionalPoints places flat values at x = 1, 2, ... and skips missing ones.
func positionalPoints(data []interface{}) ([]float64, []float64) {
	var xs, ys []float64
	for i, d := range data {
		if pair, ok := d.([]interface{}); ok && len(pair) == 2 {
			d = pair[1]
		}
		y, ok := toFloat(d)
		if !ok {
			continue
		}
		xs = append(xs, float64(i+1))
		ys = append(ys, y)
	}
	return xs, ys
}

func timePoints(data []interface{}) ([]time.Time, []float64) {
	var ts []time.Time
	var ys []float64
	for _, d := range data {
		pair, ok := d.([]interface{})
		if !ok || len(pair) != 2 {
			continue
		}
		ms, okX := toFloat(pair[0])
		y, okY := toFloat(pair[1])
		if !okX || !okY {
			continue
		}
		ts = append(ts, time.UnixMilli(int64(ms)).UTC())
		ys = append(ys, y)
	}
	return ts, ys
}

// pairPoints reads [x, y] pairs; non-numeric x labels fall back to their position.
func pairPoints(data []interface{}) ([]float64, []float64) {
	var xs, ys []float64
	for i, d := range data {
		pair, ok := d.([]interface{})
		if !ok || len(pair) != 2 {
			continue
		}
		y, ok := toFloat(pair[1])
		if !ok {
			continue
		}
		x, ok := toFloat(pair[0])
		if !ok {
			x = float64(i + 1)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
