package csvio

import (
	"context"
	"courier-route-service/internal/domain"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column order of the deliveries input file.
var inputHeader = []string{"customer", "latitude", "longitude", "priority", "weight_kg"}

// CSV-file implementation of the RecordSource port.
// The reader owns header and encoding concerns; field content stays untrusted
// text for the validator.
type FileRecordSource struct{ Path string }

func NewFileRecordSource(path string) *FileRecordSource {
	return &FileRecordSource{Path: path}
}

// Return all data rows as raw records, preserving file order.
// Short rows map missing columns to empty strings so they reach the validator
// as rejections instead of failing the whole read.
func (s *FileRecordSource) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("csv record source: open %q: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv record source: read %q: %w", s.Path, err)
	}

	if len(rows) == 0 {
		return []domain.RawRecord{}, nil
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("csv record source: %q: %w", s.Path, err)
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.RawRecord{
			Customer:  field(row, 0),
			Latitude:  field(row, 1),
			Longitude: field(row, 2),
			Priority:  field(row, 3),
			WeightKg:  field(row, 4),
		})
	}

	return records, nil
}

func checkHeader(row []string) error {
	if len(row) < len(inputHeader) {
		return fmt.Errorf("header has %d columns, want %d", len(row), len(inputHeader))
	}
	for i, want := range inputHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return fmt.Errorf("header column %d is %q, want %q", i+1, row[i], want)
		}
	}
	return nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
