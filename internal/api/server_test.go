package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/output"
)

func newTestServer() http.Handler {
	return NewServer(Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		HTML:   output.DefaultHTMLOptions(),
	})
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(data)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const salesCSV = "date,north,south\n2024-01-01,1.234,2\n2024-01-02,3,4.5\n"

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("Unexpected body %s", w.Body.String())
	}
}

func TestBuildChart(t *testing.T) {
	w := post(t, newTestServer(), "/api/v1/charts", map[string]any{
		"csv":    salesCSV,
		"kind":   []string{"column", "line"},
		"y_axes": []int{1, 2},
		"options": map[string]any{
			"title": "Sales",
			"ylim":  []float64{0, 10},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var tree map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &tree); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if tree["title"].(map[string]any)["text"] != "Sales" {
		t.Errorf("Expected title override, got %v", tree["title"])
	}
	axes, ok := tree["yAxis"].([]any)
	if !ok || len(axes) != 2 {
		t.Errorf("Expected 2 y axes, got %v", tree["yAxis"])
	}
	series := tree["series"].([]any)
	first := series[0].(map[string]any)
	if first["type"] != "column" || first["data"].([]any)[0] != 1.23 {
		t.Errorf("Unexpected first series %v", first)
	}
	cats := tree["xAxis"].(map[string]any)["categories"].([]any)
	if cats[0] != "2024-01-01" {
		t.Errorf("Expected date categories, got %v", cats)
	}
}

func TestBuildChartErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"kind list length", map[string]any{"csv": salesCSV, "kind": []string{"line", "bar", "column"}}, http.StatusBadRequest},
		{"unknown kind", map[string]any{"csv": salesCSV, "kind": []string{"pie"}}, http.StatusBadRequest},
		{"y axis zero", map[string]any{"csv": salesCSV, "y_axes": []int{0, 1}}, http.StatusBadRequest},
		{"bad options", map[string]any{"csv": salesCSV, "options": map[string]any{"xlim": []int{1}}}, http.StatusBadRequest},
		{"no numeric columns", map[string]any{"csv": "name,note\na,b\n"}, http.StatusUnprocessableEntity},
		{"header only", map[string]any{"csv": "\n"}, http.StatusUnprocessableEntity},
		{"unknown index column", map[string]any{"csv": salesCSV, "index_column": "nope"}, http.StatusBadRequest},
		{"unbalanced quote", map[string]any{"csv": "date,north\n2024-01-01,\"1\n2024-01-02,2\n"}, http.StatusBadRequest},
		{"stray quote", map[string]any{"csv": "date,north\n2024-01-01,1\"x\n"}, http.StatusBadRequest},
	}

	h := newTestServer()
	for _, tt := range tests {
		w := post(t, h, "/api/v1/charts", tt.body)
		if w.Code != tt.status {
			t.Errorf("%s: expected %d, got %d: %s", tt.name, tt.status, w.Code, w.Body.String())
		}
	}
}

func TestBuildChartHTML(t *testing.T) {
	w := post(t, newTestServer(), "/api/v1/charts/html", map[string]any{
		"csv":   salesCSV,
		"stock": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Expected an HTML content type, got %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Highcharts.StockChart") {
		t.Error("Expected a stock chart page")
	}
}
