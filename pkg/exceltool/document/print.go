package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const printTitlesName = "_xlnm.Print_Titles"

// PrintTitler is implemented by documents that can repeat leading rows on
// every printed page.
type PrintTitler interface {
	// RepeatRows prints the first count rows at the top of every page.
	RepeatRows(sheet, count int) error
}

// RepeatRows prints the first count rows of the sheet on every page.
func (w *Workbook) RepeatRows(sheet, count int) error {
	name, err := w.SheetName(sheet)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("repeat rows: count must be positive, got %d", count)
	}
	return w.f.SetDefinedName(&excelize.DefinedName{
		Name:     printTitlesName,
		RefersTo: fmt.Sprintf("'%s'!$1:$%d", name, count),
		Scope:    name,
	})
}

// RepeatedRows returns the number of leading rows printed on every page
// of the sheet, or zero when none are set.
func (w *Workbook) RepeatedRows(sheet int) (int, error) {
	name, err := w.SheetName(sheet)
	if err != nil {
		return 0, err
	}
	for _, dn := range w.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printTitlesName) || dn.Scope != name {
			continue
		}
		if n, ok := parseRowSpan(dn.RefersTo); ok {
			return n, nil
		}
	}
	return 0, nil
}

// parseRowSpan reads a leading row span such as 'Sheet1'!$1:$2. Column
// spans in the same reference are ignored.
func parseRowSpan(ref string) (int, bool) {
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			part = part[idx+1:]
		}
		from, to, ok := strings.Cut(strings.ReplaceAll(part, "$", ""), ":")
		if !ok {
			continue
		}
		r1, err1 := strconv.Atoi(from)
		r2, err2 := strconv.Atoi(to)
		if err1 != nil || err2 != nil || r1 != 1 || r2 < r1 {
			continue
		}
		return r2, true
	}
	return 0, false
}
