package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/ukaji3/tablechart-go/pkg/tablechart"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
	"github.com/ukaji3/tablechart-go/pkg/tablechart/output"
)

type chartRequest struct {
	CSV         string         `json:"csv" minLength:"1" doc:"CSV table; the first row is the header"`
	Kind        []string       `json:"kind,omitempty" doc:"One kind for every column, or one kind per column (line, bar, column, line_w_col)"`
	Stock       bool           `json:"stock,omitempty" doc:"Render with the stock chart constructor"`
	YAxes       []int          `json:"y_axes,omitempty" doc:"1-based y axis per column"`
	IndexColumn string         `json:"index_column,omitempty" doc:"Index column header; defaults to the first column"`
	Options     map[string]any `json:"options,omitempty" doc:"Option bag overrides, keyed as in option files"`
}

type chartInput struct {
	Body chartRequest
}

type chartOutput struct {
	Body map[string]any
}

type chartHTMLOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func registerHealthHandlers(api huma.API) {
	type healthOutput struct {
		Body struct {
			Status string `json:"status"`
		}
	}
	huma.Register(api, huma.Operation{OperationID: "health", Method: http.MethodGet, Path: "/api/v1/health", Summary: "Health check", Tags: []string{"Health"}},
		func(ctx context.Context, input *struct{}) (*healthOutput, error) {
			out := &healthOutput{}
			out.Body.Status = "ok"
			return out, nil
		})
}

func registerChartHandlers(api huma.API, logger *slog.Logger, htmlOpts output.HTMLOptions) {
	huma.Register(api, huma.Operation{OperationID: "build-chart", Method: http.MethodPost, Path: "/api/v1/charts", Summary: "Build a Highcharts configuration from a CSV table", Tags: []string{"Charts"}},
		func(ctx context.Context, input *chartInput) (*chartOutput, error) {
			chart, err := buildChart(input.Body, logger)
			if err != nil {
				return nil, err
			}
			data, err := output.ToJSON(chart, false)
			if err != nil {
				return nil, mapErr(err)
			}
			out := &chartOutput{}
			if err := json.Unmarshal(data, &out.Body); err != nil {
				return nil, mapErr(err)
			}
			return out, nil
		})

	huma.Register(api, huma.Operation{OperationID: "build-chart-html", Method: http.MethodPost, Path: "/api/v1/charts/html", Summary: "Build a standalone chart page from a CSV table", Tags: []string{"Charts"}},
		func(ctx context.Context, input *chartInput) (*chartHTMLOutput, error) {
			chart, err := buildChart(input.Body, logger)
			if err != nil {
				return nil, err
			}
			page, err := output.ToHTML(chart, htmlOpts)
			if err != nil {
				return nil, mapErr(err)
			}
			return &chartHTMLOutput{ContentType: "text/html; charset=utf-8", Body: page}, nil
		})
}

// buildChart runs a request through loading and plotting. Errors are already
// mapped to HTTP errors.
func buildChart(req chartRequest, logger *slog.Logger) (*models.Chart, error) {
	table, err := tablechart.LoadCSV([]byte(req.CSV), req.IndexColumn)
	if err != nil {
		return nil, mapErr(err)
	}

	p := tablechart.DefaultPlotOptions()
	p.Logger = logger
	p.Stock = req.Stock
	p.YAxes = req.YAxes

	switch len(req.Kind) {
	case 0:
	case 1:
		p.Kind, err = tablechart.ParseKindSpec(req.Kind[0])
	default:
		p.Kind, err = tablechart.ParseKindList(req.Kind)
	}
	if err != nil {
		return nil, mapErr(err)
	}

	if len(req.Options) > 0 {
		raw, err := json.Marshal(req.Options)
		if err != nil {
			return nil, huma.Error400BadRequest(fmt.Sprintf("options: %v", err))
		}
		if err := json.Unmarshal(raw, &p.Options); err != nil {
			return nil, huma.Error400BadRequest(fmt.Sprintf("options: %v", err))
		}
	}

	chart, err := tablechart.Plot(table, p)
	if err != nil {
		return nil, mapErr(err)
	}
	if chart == nil {
		return nil, huma.Error422UnprocessableEntity("table has no numeric columns to plot")
	}
	return chart, nil
}
