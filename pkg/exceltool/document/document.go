// Package document is the spreadsheet document model used by the mapping
// engine. Builder and Source describe what the engine needs; Workbook
// implements both on top of excelize.
package document

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

// MaxRowIndex is the last addressable 0-based row of a sheet.
const MaxRowIndex = excelize.TotalRows - 1

// Builder receives the sheets, rows and constraints of an export.
// Rows and columns are 0-based.
type Builder interface {
	// NewSheet appends a sheet and returns its index.
	NewSheet() (int, error)
	// SetRow writes the cells of row, starting at column 0.
	SetRow(sheet int, row models.Row) error
	// MergeRange merges the inclusive cell range.
	MergeRange(sheet, rowFrom, rowTo, colFrom, colTo int) error
	// SetColumnWidth sets a column width from a width hint (see WidthToChars).
	SetColumnWidth(sheet, col, units int) error
	// FreezeRows keeps the first count rows visible while scrolling.
	FreezeRows(sheet, count int) error
	// ApplyValidation attaches a dropdown constraint.
	ApplyValidation(sheet int, d models.ValidationDescriptor) error
}

// Source exposes the rows of an opened document as cell text.
type Source interface {
	// SheetCount returns the number of sheets.
	SheetCount() int
	// RowAt returns the cell texts of a row and whether the row exists.
	RowAt(sheet, index int) ([]string, bool, error)
}

// ErrSheetNotFound indicates a sheet index outside the document.
var ErrSheetNotFound = errors.New("sheet not found")

// IOError wraps a failure to open, read or write the document container.
// Callers own retry policy; the error is returned unmodified otherwise.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("document %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("document %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
