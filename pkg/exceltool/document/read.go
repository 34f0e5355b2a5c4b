package document

import "github.com/xuri/excelize/v2"

// SheetCount returns the number of sheets in the workbook.
func (w *Workbook) SheetCount() int {
	return len(w.sheets)
}

// Rows returns the cell texts of every row of a sheet. Cell values are
// read unformatted so numbers keep their stored precision. Rows are read
// once per sheet and reused until the sheet is written again.
func (w *Workbook) Rows(sheet int) ([][]string, error) {
	if rows, ok := w.rows[sheet]; ok {
		return rows, nil
	}
	name, err := w.SheetName(sheet)
	if err != nil {
		return nil, err
	}
	rows, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &IOError{Op: "read", Path: name, Err: err}
	}
	w.rows[sheet] = rows
	return rows, nil
}

// RowAt returns the cell texts of one row. A row exists when the sheet
// stores it, even if all of its cells are empty; its texts are then empty.
func (w *Workbook) RowAt(sheet, index int) ([]string, bool, error) {
	present, err := w.presentRows(sheet)
	if err != nil {
		return nil, false, err
	}
	if _, ok := present[index]; !ok {
		return nil, false, nil
	}
	rows, err := w.Rows(sheet)
	if err != nil {
		return nil, false, err
	}
	if index >= len(rows) {
		return []string{}, true, nil
	}
	return rows[index], true, nil
}
