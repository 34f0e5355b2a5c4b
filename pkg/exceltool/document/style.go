package document

import "github.com/xuri/excelize/v2"

// defaultRowHeight is the sheet default row height in points.
const defaultRowHeight = 20.0

// basicStyle is the bordered, centered, wrapping style applied to the
// title, header and data cells.
func basicStyle() *excelize.Style {
	border := func(side string) excelize.Border {
		return excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	return &excelize.Style{
		Border: []excelize.Border{border("left"), border("top"), border("right"), border("bottom")},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	}
}

// cellStyle returns the style ID for this workbook, creating it on first
// use. Style IDs belong to one file and are never shared across workbooks.
func (w *Workbook) cellStyle() (int, error) {
	if w.styled {
		return w.style, nil
	}
	id, err := w.f.NewStyle(basicStyle())
	if err != nil {
		return 0, err
	}
	w.style, w.styled = id, true
	return id, nil
}
