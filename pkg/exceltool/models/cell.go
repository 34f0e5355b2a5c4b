// Package models defines the value types shared by the mapping engine and
// the spreadsheet document layer.
package models

import "strconv"

// CellKind tags the representation of a CellValue.
type CellKind uint8

const (
	// CellText is a literal string cell.
	CellText CellKind = iota
	// CellNumeric is a double precision number cell.
	CellNumeric
)

// CellValue is a single spreadsheet cell produced by coercion.
type CellValue struct {
	// Kind selects which of Number or Text is meaningful.
	Kind CellKind `json:"kind"`
	// Number holds the value of a numeric cell.
	Number float64 `json:"number,omitempty"`
	// Text holds the value of a text cell.
	Text string `json:"text,omitempty"`
}

// Numeric returns a numeric cell.
func Numeric(v float64) CellValue {
	return CellValue{Kind: CellNumeric, Number: v}
}

// Text returns a text cell.
func Text(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// IsNumeric reports whether the cell carries a number.
func (c CellValue) IsNumeric() bool {
	return c.Kind == CellNumeric
}

// String renders the cell the way a spreadsheet reader would return it.
func (c CellValue) String() string {
	if c.Kind == CellNumeric {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// Interface returns the cell as float64 or string, suitable for
// spreadsheet writers that accept untyped row slices.
func (c CellValue) Interface() interface{} {
	if c.Kind == CellNumeric {
		return c.Number
	}
	return c.Text
}

// Row is one encoded record placed at a 0-based sheet row.
type Row struct {
	// Index is the 0-based row slot inside the sheet.
	Index int `json:"index"`
	// Cells holds one value per export column, in column order.
	Cells []CellValue `json:"cells"`
}
