package parser

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../charts/chart1.xml", "xl/drawings", "xl/charts/chart1.xml"},
		{"/xl/drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"drawing1.xml", "xl/drawings", "xl/drawings/drawing1.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestRelsPath(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/workbook.xml", "xl/_rels/workbook.xml.rels"},
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
	}

	for _, tt := range tests {
		result := relsPath(tt.part)
		if result != tt.expected {
			t.Errorf("relsPath(%q) = %q, expected %q", tt.part, result, tt.expected)
		}
	}
}

func TestSheetPaths(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	parts := map[string]string{
		"xl/workbook.xml": `<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><sheets>
<sheet name="Data" sheetId="1" r:id="rId1"/><sheet name="Summary" sheetId="2" r:id="rId2"/></sheets></workbook>`,
		"xl/_rels/workbook.xml.rels": `<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`,
		"xl/worksheets/_rels/sheet1.xml.rels": `<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/vmlDrawing" Target="../drawings/vmlDrawing1.vml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`,
	}
	for name, content := range parts {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create part: %v", err)
		}
		fw.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}

	sheets, err := sheetPaths(r)
	if err != nil {
		t.Fatalf("sheetPaths failed: %v", err)
	}
	if sheets["Data"] != "xl/worksheets/sheet1.xml" {
		t.Errorf("Expected Data at xl/worksheets/sheet1.xml, got %q", sheets["Data"])
	}
	if sheets["Summary"] != "xl/worksheets/sheet2.xml" {
		t.Errorf("Expected Summary at xl/worksheets/sheet2.xml, got %q", sheets["Summary"])
	}

	drawing := relatedPart(r, "xl/worksheets/sheet1.xml", "drawing")
	if drawing != "xl/drawings/drawing1.xml" {
		t.Errorf("relatedPart(drawing) = %q, expected xl/drawings/drawing1.xml", drawing)
	}
	if missing := relatedPart(r, "xl/worksheets/sheet2.xml", "drawing"); missing != "" {
		t.Errorf("relatedPart(sheet2) = %q, expected empty", missing)
	}
}
