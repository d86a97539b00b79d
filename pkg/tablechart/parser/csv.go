package parser

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/ukaji3/tablechart-go/pkg/tablechart/models"
)

// ReadCSV reads a table from CSV. The first record is the header; indexName
// selects the index column (empty means the first column).
func ReadCSV(r io.Reader, indexName string) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoTable
	}
	if err != nil {
		return nil, err
	}

	var records [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}
		records = append(records, row)
	}

	return buildTable(header, records, indexName)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
