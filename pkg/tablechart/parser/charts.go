package parser

import (
	"archive/zip"
	"encoding/xml"
	"path"
	"strconv"
	"strings"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

// seriesKinds maps OOXML chart groups to the series kind they are drawn as.
// Bar groups are refined by their direction in chartKind.
var seriesKinds = map[string]string{
	"lineChart":   "line",
	"line3DChart": "line",
	"barChart":    "column",
	"bar3DChart":  "column",
}

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
const EMUPerPixel = 9525

// EMUToPixels converts EMU to pixels at 96 DPI.
func EMUToPixels(emu int64) int {
	return int(emu / EMUPerPixel)
}

type xmlVal struct {
	Val string `xml:"val,attr"`
}

type xmlExt struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xmlRichTitle struct {
	Runs []string `xml:"tx>rich>p>r>t"`
}

func (t *xmlRichTitle) text() string {
	if t == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(t.Runs, ""))
}

// xmlPlotElement is any child of c:plotArea: a chart group or an axis.
type xmlPlotElement struct {
	XMLName xml.Name
	BarDir  *xmlVal       `xml:"barDir"`
	Series  []struct{}    `xml:"ser"`
	Title   *xmlRichTitle `xml:"title"`
	Scaling *struct {
		Min *xmlVal `xml:"min"`
		Max *xmlVal `xml:"max"`
	} `xml:"scaling"`
}

type xmlChartSpace struct {
	Chart struct {
		Title    *xmlRichTitle `xml:"title"`
		PlotArea struct {
			Elements []xmlPlotElement `xml:",any"`
		} `xml:"plotArea"`
	} `xml:"chart"`
}

type xmlAnchor struct {
	XMLName xml.Name
	Ext     *xmlExt `xml:"ext"`
	Frame   *struct {
		Name struct {
			Name string `xml:"name,attr"`
		} `xml:"nvGraphicFramePr>cNvPr"`
		Xfrm struct {
			Ext xmlExt `xml:"ext"`
		} `xml:"xfrm"`
		Chart struct {
			ID string `xml:"id,attr"`
		} `xml:"graphic>graphicData>chart"`
	} `xml:"graphicFrame"`
}

type xmlDrawing struct {
	Anchors []xmlAnchor `xml:",any"`
}

// ExtractChartHints reads the charts of every sheet in an xlsx file.
// Sheets without charts are absent from the result.
func ExtractChartHints(xlsxPath string) (map[string][]models.ChartHint, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	result := make(map[string][]models.ChartHint)
	sheetFiles, err := sheetPaths(&r.Reader)
	if err != nil {
		return nil, err
	}

	for sheetName, sheetPath := range sheetFiles {
		drawingPath := relatedPart(&r.Reader, sheetPath, "drawing")
		if drawingPath == "" {
			continue
		}
		hints := drawingChartHints(&r.Reader, drawingPath)
		if len(hints) > 0 {
			result[sheetName] = hints
		}
	}

	return result, nil
}

// drawingChartHints returns the charts anchored in a drawing part, in document order.
func drawingChartHints(r *zip.Reader, drawingPath string) []models.ChartHint {
	data, err := readZipFile(r, drawingPath)
	if err != nil || data == nil {
		return nil
	}
	var drawing xmlDrawing
	if err := xml.Unmarshal(data, &drawing); err != nil {
		return nil
	}

	rels := partRelationships(r, drawingPath)

	var hints []models.ChartHint
	for _, anchor := range drawing.Anchors {
		if anchor.Frame == nil || anchor.Frame.Chart.ID == "" {
			continue
		}
		rel, ok := rels[anchor.Frame.Chart.ID]
		if !ok {
			continue
		}
		chartXML, err := readZipFile(r, resolveRelativePath(rel.Target, path.Dir(drawingPath)))
		if err != nil || chartXML == nil {
			continue
		}
		hint, err := parseChartXML(chartXML)
		if err != nil {
			continue
		}
		hint.Name = anchor.Frame.Name.Name

		ext := anchor.Frame.Xfrm.Ext
		if anchor.Ext != nil {
			ext = *anchor.Ext
		}
		if ext.Cx > 0 && ext.Cy > 0 {
			w, h := EMUToPixels(ext.Cx), EMUToPixels(ext.Cy)
			hint.W, hint.H = &w, &h
		}
		hints = append(hints, hint)
	}
	return hints
}

// parseChartXML reads chart type, title and value axis settings from a chart part.
func parseChartXML(data []byte) (models.ChartHint, error) {
	var cs xmlChartSpace
	if err := xml.Unmarshal(data, &cs); err != nil {
		return models.ChartHint{}, err
	}

	hint := models.ChartHint{
		ChartType: "unknown",
		Title:     cs.Chart.Title.text(),
	}
	typed := false
	for _, el := range cs.Chart.PlotArea.Elements {
		if strings.HasSuffix(el.XMLName.Local, "Chart") && !typed {
			typed = true
			hint.ChartType = el.XMLName.Local
			hint.Kind = chartKind(el)
			hint.SeriesCount = len(el.Series)
			continue
		}
		if el.XMLName.Local == "valAx" && hint.YAxisTitle == "" && hint.YAxisRange == nil {
			hint.YAxisTitle = el.Title.text()
			hint.YAxisRange = axisRange(el)
		}
	}
	return hint, nil
}

func chartKind(el xmlPlotElement) string {
	kind := seriesKinds[el.XMLName.Local]
	if kind == "column" && el.BarDir != nil && el.BarDir.Val == "bar" {
		return "bar"
	}
	return kind
}

func axisRange(el xmlPlotElement) []float64 {
	if el.Scaling == nil || el.Scaling.Min == nil || el.Scaling.Max == nil {
		return nil
	}
	min, err := strconv.ParseFloat(el.Scaling.Min.Val, 64)
	if err != nil {
		return nil
	}
	max, err := strconv.ParseFloat(el.Scaling.Max.Val, 64)
	if err != nil {
		return nil
	}
	return []float64{min, max}
}
