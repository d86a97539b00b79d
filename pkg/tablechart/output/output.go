// Package output serializes charts as Highcharts JSON, standalone HTML pages
// and static previews.
package output

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

// Default script locations for the Highcharts and Highstock builds.
const (
	DefaultScriptURL      = "https://code.highcharts.com/highcharts.js"
	DefaultStockScriptURL = "https://code.highcharts.com/stock/highstock.js"
)

// ToJSON returns the full option tree of chart, series included.
func ToJSON(chart *models.Chart, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(chart, "", "  ")
	}
	return json.Marshal(chart)
}

// HTMLOptions configures ToHTML.
type HTMLOptions struct {
	// ScriptURL loads Highcharts for standard charts.
	ScriptURL string
	// StockScriptURL loads Highstock for stock charts.
	StockScriptURL string
	// ContainerID is the id of the chart element; defaults to "container".
	ContainerID string
}

// DefaultHTMLOptions returns options loading the scripts from the Highcharts CDN.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		ScriptURL:      DefaultScriptURL,
		StockScriptURL: DefaultStockScriptURL,
		ContainerID:    "container",
	}
}

type page struct {
	Title       string
	ScriptURL   string
	ContainerID string
	Constructor template.JS
	Options     string
}

// The JSON.parse reviver turns formatter sources back into functions.
var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.ScriptURL}}"></script>
</head>
<body>
<div id="{{.ContainerID}}"></div>
<script>
(function () {
  var options = JSON.parse({{.Options}}, function (key, value) {
    if (key === "formatter" && typeof value === "string") {
      return new Function("return " + value)();
    }
    return value;
  });
  new Highcharts.{{.Constructor}}({{.ContainerID}}, options);
})();
</script>
</body>
</html>
`))

// WriteHTML writes a standalone page rendering chart to w.
func WriteHTML(w io.Writer, chart *models.Chart, opts HTMLOptions) error {
	data, err := json.Marshal(chart)
	if err != nil {
		return err
	}

	defaults := DefaultHTMLOptions()
	scriptURL := opts.ScriptURL
	if scriptURL == "" {
		scriptURL = defaults.ScriptURL
	}
	if chart.IsStock() {
		scriptURL = opts.StockScriptURL
		if scriptURL == "" {
			scriptURL = defaults.StockScriptURL
		}
	}
	containerID := opts.ContainerID
	if containerID == "" {
		containerID = defaults.ContainerID
	}

	return pageTemplate.Execute(w, page{
		Title:       chart.Settings.Title.Text,
		ScriptURL:   scriptURL,
		ContainerID: containerID,
		Constructor: template.JS(chart.Constructor),
		Options:     string(data),
	})
}

// ToHTML returns a standalone page rendering chart.
func ToHTML(chart *models.Chart, opts HTMLOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, chart, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
