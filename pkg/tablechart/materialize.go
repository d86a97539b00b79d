package tablechart

import (
	"fmt"
	"math"
	"time"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

// AddSeries converts one column into the point format kind expects and appends
// it to chart as a series named name. yAxis is 1-based. The chart is returned
// for chaining; on error nothing is appended.
func AddSeries(chart *models.Chart, index models.Index, values []float64, name string, kind Kind, yAxis int) (*models.Chart, error) {
	if len(values) != index.Len() {
		return chart, fmt.Errorf("%w: column %q has %d values for %d index labels",
			ErrLengthMismatch, name, len(values), index.Len())
	}
	if yAxis < 1 {
		return chart, fmt.Errorf("%w: %d for column %q", ErrInvalidYAxis, yAxis, name)
	}

	var (
		seriesType string
		data       []interface{}
	)
	switch kind {
	case KindBar, KindColumn:
		seriesType = string(kind)
		data = make([]interface{}, len(values))
		for i, v := range values {
			data[i] = pointValue(RoundTo2(v))
		}
	case KindLine:
		seriesType = string(KindLine)
		encode := indexEncoder(index)
		data = make([]interface{}, len(values))
		for i, v := range values {
			data[i] = []interface{}{encode(index.Values[i]), pointValue(v)}
		}
	case KindLineWithColumn:
		seriesType = string(KindLine)
		data = make([]interface{}, len(values))
		for i, v := range values {
			data[i] = pointValue(v)
		}
	default:
		return chart, fmt.Errorf("%w: %q for column %q", ErrUnknownKind, kind, name)
	}

	return chart.AddSeries(models.Series{
		Name:  name,
		Type:  seriesType,
		YAxis: yAxis - 1,
		Data:  data,
	}), nil
}

// RoundTo2 rounds v to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EncodeTime returns the Highcharts datetime encoding of t (epoch milliseconds, UTC).
func EncodeTime(t time.Time) int64 {
	return t.UnixMilli()
}

func indexEncoder(index models.Index) func(interface{}) interface{} {
	if !index.IsAllDates() {
		return func(v interface{}) interface{} { return v }
	}
	return func(v interface{}) interface{} {
		return EncodeTime(v.(time.Time))
	}
}

func pointValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
