package tablechart

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

// PlotOptions configures Plot.
type PlotOptions struct {
	// Kind selects the chart kind for all columns or per column.
	Kind KindSpec
	// Stock renders with the stock chart constructor.
	Stock bool
	// YAxes holds one 1-based y-axis index per column. Nil means axis 1 for all.
	YAxes []int
	// Options is the visual option bag. Use DefaultOptions as a base.
	Options Options
	// Debug pretty-prints the resolved settings to DebugWriter.
	Debug bool
	// DebugWriter receives debug output; defaults to os.Stderr.
	DebugWriter io.Writer
	// Logger receives notices; defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultPlotOptions returns line-chart plot options with default visual options.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Kind:    SingleKind(KindLine),
		Options: DefaultOptions(),
	}
}

// Plot builds a chart from table: one series per column plus resolved settings.
// A table without columns logs a notice and returns a nil chart and nil error.
func Plot(table *models.Table, p PlotOptions) (*models.Chart, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	n := table.NumColumns()
	if n == 0 {
		logger.Info("nothing to plot")
		return nil, nil
	}
	for _, col := range table.Columns {
		if len(col.Values) != table.Index.Len() {
			return nil, fmt.Errorf("%w: column %q has %d values for %d index labels",
				ErrLengthMismatch, col.Name, len(col.Values), table.Index.Len())
		}
	}

	opts := p.Options
	if opts.Colors == nil {
		opts.Colors = DefaultColors(n)
	}

	yAxes, err := resolveYAxes(p.YAxes, n)
	if err != nil {
		return nil, err
	}

	kinds, err := ResolveKinds(p.Kind, n)
	if err != nil {
		return nil, err
	}

	var chart *models.Chart
	if p.Stock {
		chart = models.NewHighstock(opts.Width, opts.Height)
	} else {
		chart = models.NewHighchart(opts.Width, opts.Height)
	}

	if table.Index.IsAllDates() {
		chart.SetXAxisType("datetime")
	}

	settings := Resolve(opts)
	settings.SecondaryYAxes = secondaryYAxes(yAxes)
	if kinds.Categorical {
		settings.XAxis.Categories = Categories(table.Index)
	}

	logger.Debug("plotting table",
		"columns", n,
		"rows", table.Index.Len(),
		"kind", p.Kind.String(),
		"stock", p.Stock)

	for i, col := range table.Columns {
		if _, err := AddSeries(chart, table.Index, col.Values, col.Name, kinds.Kinds[i], yAxes[i]); err != nil {
			return nil, err
		}
	}

	chart.ApplySettings(settings)

	if p.Debug {
		w := p.DebugWriter
		if w == nil {
			w = os.Stderr
		}
		if err := writeDebug(w, settings); err != nil {
			logger.Warn("debug output failed", "error", err)
		}
	}

	return chart, nil
}

// Categories converts index labels into category axis labels.
// Dates render as 2006-01-02, or RFC 3339 when they carry a time of day.
func Categories(index models.Index) []interface{} {
	cats := make([]interface{}, index.Len())
	for i, v := range index.Values {
		if t, ok := v.(time.Time); ok {
			cats[i] = formatDate(t)
			continue
		}
		cats[i] = v
	}
	return cats
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

func resolveYAxes(yAxes []int, n int) ([]int, error) {
	if yAxes == nil {
		out := make([]int, n)
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	if len(yAxes) != n {
		return nil, fmt.Errorf("%w: y-axis list has %d entries for %d columns", ErrLengthMismatch, len(yAxes), n)
	}
	for i, a := range yAxes {
		if a < 1 {
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidYAxis, a, i)
		}
	}
	return append([]int{}, yAxes...), nil
}

// secondaryYAxes returns the extra axes needed beyond axis 1.
func secondaryYAxes(yAxes []int) []models.YAxis {
	highest := 1
	for _, a := range yAxes {
		if a > highest {
			highest = a
		}
	}
	if highest == 1 {
		return nil
	}
	extra := make([]models.YAxis, highest-1)
	for i := range extra {
		extra[i] = models.YAxis{
			Title:     models.Text{Text: ""},
			LineWidth: 2,
			Opposite:  true,
		}
	}
	return extra
}

func writeDebug(w io.Writer, settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
