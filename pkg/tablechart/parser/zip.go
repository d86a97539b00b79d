package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xmlRelationships struct {
	Rels []xmlRelationship `xml:"Relationship"`
}

type xmlWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		ID   string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// readZipFile returns the content of a package part, or nil if it is absent.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// resolveRelativePath resolves a relationship target against the directory
// of the part that owns the relationship.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

// relsPath returns the relationships part of a package part.
func relsPath(partPath string) string {
	return path.Join(path.Dir(partPath), "_rels", path.Base(partPath)+".rels")
}

// partRelationships maps relationship ids of a part to their relationship.
func partRelationships(r *zip.Reader, partPath string) map[string]xmlRelationship {
	result := make(map[string]xmlRelationship)

	data, err := readZipFile(r, relsPath(partPath))
	if err != nil || data == nil {
		return result
	}
	var rels xmlRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return result
	}
	for _, rel := range rels.Rels {
		result[rel.ID] = rel
	}
	return result
}

// relatedPart returns the first part related to partPath whose relationship
// type contains relType, or "" when there is none.
func relatedPart(r *zip.Reader, partPath, relType string) string {
	data, err := readZipFile(r, relsPath(partPath))
	if err != nil || data == nil {
		return ""
	}
	var rels xmlRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return ""
	}
	for _, rel := range rels.Rels {
		if strings.HasSuffix(strings.ToLower(rel.Type), "/"+relType) {
			return resolveRelativePath(rel.Target, path.Dir(partPath))
		}
	}
	return ""
}

// sheetPaths maps sheet names to their worksheet part paths.
func sheetPaths(r *zip.Reader) (map[string]string, error) {
	result := make(map[string]string)

	data, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || data == nil {
		return result, err
	}
	var wb xmlWorkbook
	if err := xml.Unmarshal(data, &wb); err != nil {
		return nil, err
	}

	rels := partRelationships(r, "xl/workbook.xml")
	for _, sheet := range wb.Sheets {
		rel, ok := rels[sheet.ID]
		if !ok || !strings.Contains(strings.ToLower(rel.Type), "worksheet") {
			continue
		}
		result[sheet.Name] = resolveRelativePath(rel.Target, "xl")
	}
	return result, nil
}
