package parser

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

const parquetReadBatch = 256

// ReadParquet reads a table from a flat Parquet file. indexName selects the
// index column (empty means the first column). Timestamp columns become
// time.Time labels; string index columns go through date inference.
func ReadParquet(r io.ReaderAt, size int64, indexName string) (*models.Table, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, err
	}

	schema := pf.Schema()
	paths := schema.Columns()
	if len(paths) == 0 {
		return nil, ErrNoTable
	}

	header := make([]string, len(paths))
	timeUnits := make([]time.Duration, len(paths))
	for i, path := range paths {
		header[i] = strings.Join(path, ".")
		if leaf, ok := schema.Lookup(path...); ok {
			timeUnits[i] = timestampUnit(leaf.Node)
		}
	}

	indexCol, err := indexPosition(header, indexName)
	if err != nil {
		return nil, err
	}

	cells := make([][]parquet.Value, len(paths))
	buf := make([]parquet.Row, parquetReadBatch)
	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				byCol := make([]parquet.Value, len(paths))
				for _, v := range row {
					if c := v.Column(); c >= 0 && c < len(byCol) {
						byCol[c] = v.Clone()
					}
				}
				for c := range cells {
					cells[c] = append(cells[c], byCol[c])
				}
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("read row group: %w", err)
			}
		}
		rows.Close()
	}

	table := &models.Table{
		Index: models.Index{
			Name:   header[indexCol],
			Values: parquetIndex(cells[indexCol], timeUnits[indexCol]),
		},
	}
	for c, name := range header {
		if c == indexCol {
			continue
		}
		values, ok := parquetNumbers(cells[c])
		if !ok {
			continue
		}
		table.Columns = append(table.Columns, models.Column{Name: name, Values: values})
	}
	return table, nil
}

// timestampUnit returns the unit of a timestamp column, or zero when the
// column is not a timestamp.
func timestampUnit(node parquet.Node) time.Duration {
	lt := node.Type().LogicalType()
	if lt == nil || lt.Timestamp == nil {
		return 0
	}
	switch unit := lt.Timestamp.Unit; {
	case unit.Nanos != nil:
		return time.Nanosecond
	case unit.Micros != nil:
		return time.Microsecond
	default:
		return time.Millisecond
	}
}

func parquetIndex(values []parquet.Value, unit time.Duration) []interface{} {
	if unit != 0 {
		out := make([]interface{}, len(values))
		for i, v := range values {
			out[i] = time.Unix(0, v.Int64()*int64(unit)).UTC()
		}
		return out
	}

	raw := make([]string, len(values))
	for i, v := range values {
		raw[i] = parquetString(v)
	}
	return parseIndex(raw)
}

func parquetString(v parquet.Value) string {
	switch v.Kind() {
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	case parquet.Int32:
		return fmt.Sprint(v.Int32())
	case parquet.Int64:
		return fmt.Sprint(v.Int64())
	case parquet.Float:
		return fmt.Sprint(v.Float())
	case parquet.Double:
		return fmt.Sprint(v.Double())
	case parquet.Boolean:
		return fmt.Sprint(v.Boolean())
	}
	return ""
}

// parquetNumbers converts a column to float64. It reports false for columns
// with no numeric cell.
func parquetNumbers(values []parquet.Value) ([]float64, bool) {
	out := make([]float64, len(values))
	numeric := false
	for i, v := range values {
		out[i] = math.NaN()
		if v.IsNull() {
			continue
		}
		switch v.Kind() {
		case parquet.Int32:
			out[i] = float64(v.Int32())
		case parquet.Int64:
			out[i] = float64(v.Int64())
		case parquet.Float:
			out[i] = float64(v.Float())
		case parquet.Double:
			out[i] = v.Double()
		case parquet.ByteArray:
			f, ok := parseNumber(string(v.ByteArray()))
			if !ok {
				continue
			}
			out[i] = f
		default:
			continue
		}
		numeric = true
	}
	return out, numeric
}
