package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pmorel/cfp-radar/internal/cfp"
)

const sheetName = "Sheet1"

// XLSXSink writes records as an Excel workbook with the same columns as the
// CSV sink
type XLSXSink struct {
	path string
}

// NewXLSX creates an XLSX sink writing to path
func NewXLSX(path string) *XLSXSink {
	return &XLSXSink{path: path}
}

// Flush rebuilds the workbook from the full record sequence and overwrites
// the output file
func (s *XLSXSink) Flush(records []cfp.MatchRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range cfp.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for row, rec := range records {
		values := []any{rec.Title, rec.Acronym, rec.When, rec.Where, rec.Deadline, rec.Score, rec.Justification}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Path returns the output file path
func (s *XLSXSink) Path() string {
	return s.path
}
