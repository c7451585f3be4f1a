// Package export writes list views to .xlsx workbooks, the table-export
// affordance of the dashboard screens.
package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Column maps one spreadsheet column to a record field.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// ToXLSX renders records into a single-sheet workbook: a header row followed
// by one row per record, in the order given.
func ToXLSX[T any](records []T, columns []Column[T], sheet string) (*bytes.Buffer, error) {
	if sheet == "" {
		sheet = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return nil, fmt.Errorf("renaming sheet: %w", err)
		}
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for rowIdx, rec := range records {
		for colIdx, col := range columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, col.Value(rec)); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", rowIdx+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("generating workbook: %w", err)
	}
	return buf, nil
}

// WriteFile renders records and writes the workbook to path.
func WriteFile[T any](path string, records []T, columns []Column[T], sheet string) error {
	buf, err := ToXLSX(records, columns, sheet)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
