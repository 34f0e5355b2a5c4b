package document

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

// NewSheet appends a sheet. The first call on a new workbook reuses the
// sheet excelize creates by default.
func (w *Workbook) NewSheet() (int, error) {
	var idx int
	if w.fresh {
		w.fresh = false
		idx = 0
		if err := w.f.SetSheetName(w.sheets[0], w.sheetName(0)); err != nil {
			return 0, err
		}
		w.sheets[0] = w.sheetName(0)
	} else {
		idx = len(w.sheets)
		name := w.sheetName(idx)
		if _, err := w.f.NewSheet(name); err != nil {
			return 0, err
		}
		w.sheets = append(w.sheets, name)
	}

	w.present = nil
	height, custom := defaultRowHeight, true
	if err := w.f.SetSheetProps(w.sheets[idx], &excelize.SheetPropsOptions{
		DefaultRowHeight: &height,
		CustomHeight:     &custom,
	}); err != nil {
		return 0, err
	}
	return idx, nil
}

func (w *Workbook) sheetName(idx int) string {
	return fmt.Sprintf("%s%d", w.prefix, idx+1)
}

// SetRow writes row.Cells from column A of row.Index and applies the
// workbook's cell style to them.
func (w *Workbook) SetRow(sheet int, row models.Row) error {
	name, err := w.SheetName(sheet)
	if err != nil {
		return err
	}
	if len(row.Cells) == 0 {
		return nil
	}
	delete(w.rows, sheet)
	w.present = nil

	values := make([]interface{}, len(row.Cells))
	for i, c := range row.Cells {
		values[i] = c.Interface()
	}
	first, err := cellName(0, row.Index)
	if err != nil {
		return err
	}
	if err := w.f.SetSheetRow(name, first, &values); err != nil {
		return err
	}

	last, err := cellName(len(row.Cells)-1, row.Index)
	if err != nil {
		return err
	}
	style, err := w.cellStyle()
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(name, first, last, style)
}

// MergeRange merges the inclusive range and styles it as one cell.
func (w *Workbook) MergeRange(sheet, rowFrom, rowTo, colFrom, colTo int) error {
	name, err := w.SheetName(sheet)
	if err != nil {
		return err
	}
	first, err := cellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	last, err := cellName(colTo, rowTo)
	if err != nil {
		return err
	}
	w.present = nil
	if err := w.f.MergeCell(name, first, last); err != nil {
		return err
	}
	style, err := w.cellStyle()
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(name, first, last, style)
}

// SetColumnWidth sets the width of one column from a width hint.
func (w *Workbook) SetColumnWidth(sheet, col, units int) error {
	name, err := w.SheetName(sheet)
	if err != nil {
		return err
	}
	colName, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}
	return w.f.SetColWidth(name, colName, colName, WidthToChars(units))
}

// FreezeRows freezes the first count rows.
func (w *Workbook) FreezeRows(sheet, count int) error {
	name, err := w.SheetName(sheet)
	if err != nil {
		return err
	}
	topLeft, err := cellName(0, count)
	if err != nil {
		return err
	}
	return w.f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      count,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: "bottomLeft"},
		},
	})
}

// ApplyValidation attaches a stop-style dropdown list to the column range
// described by d. Blank cells stay allowed.
func (w *Workbook) ApplyValidation(sheet int, d models.ValidationDescriptor) error {
	name, err := w.SheetName(sheet)
	if err != nil {
		return err
	}
	sqref, err := Sqref(d)
	if err != nil {
		return err
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = sqref
	if err := dv.SetDropList(d.AllowedValues); err != nil {
		return fmt.Errorf("column %d drop list: %w", d.Column, err)
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid value", "Please choose a value from the list")
	return w.f.AddDataValidation(name, dv)
}

// Sqref renders the cell range of d in A1 notation, e.g. "C3:C1048576".
func Sqref(d models.ValidationDescriptor) (string, error) {
	first, err := cellName(d.Column, d.RowFrom)
	if err != nil {
		return "", err
	}
	last, err := cellName(d.Column, d.RowTo)
	if err != nil {
		return "", err
	}
	return first + ":" + last, nil
}

// cellName converts 0-based coordinates to an A1 reference.
func cellName(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}
