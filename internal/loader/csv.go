package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// record is one data row of a catalog file, with its 1-based line number for errors
type record struct {
	line   int
	fields []string
}

// readCSV reads a comma separated catalog. A leading header row, one without any
// numeric field, is skipped. Fields are trimmed.
func readCSV(path string, fields int) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields
	r.TrimLeadingSpace = true
	r.Comment = '#'

	var records []record
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		line, _ := r.FieldPos(0)
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		records = append(records, record{line: line, fields: row})
	}

	if len(records) > 0 && isHeader(records[0].fields) {
		records = records[1:]
	}
	return records, nil
}

// isHeader reports whether a row names its columns instead of holding data
func isHeader(row []string) bool {
	for _, f := range row {
		if _, err := strconv.Atoi(f); err == nil {
			return false
		}
	}
	return true
}

func (r record) int(col int, name string) (int, error) {
	v, err := strconv.Atoi(r.fields[col])
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", r.line, name, r.fields[col])
	}
	return v, nil
}
