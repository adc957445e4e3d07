package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseCSVRecords reads a CSV stream whose first row is a header and returns
// one map per data row, keyed by the trimmed header names. Used by the bulk
// import tool.
func ParseCSVRecords(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []map[string]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		record := make(map[string]string, len(header))
		for i, value := range row {
			if i < len(header) {
				record[header[i]] = strings.TrimSpace(value)
			}
		}
		records = append(records, record)
	}
	return records, nil
}
