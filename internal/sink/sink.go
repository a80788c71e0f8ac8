package sink

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pmorel/cfp-radar/internal/cfp"
)

// Sink writes a full snapshot of the accumulated match records
type Sink interface {
	// Flush overwrites the output with the tabular serialization of records
	Flush(records []cfp.MatchRecord) error
	// Path returns the output file path
	Path() string
}

// CSVSink writes records as UTF-8 CSV with a fixed header row
type CSVSink struct {
	path string
}

// NewCSV creates a CSV sink writing to path
func NewCSV(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Flush serializes the full record sequence to memory and overwrites the
// output file in one write
func (s *CSVSink) Flush(records []cfp.MatchRecord) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(cfp.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Path returns the output file path
func (s *CSVSink) Path() string {
	return s.path
}
