package exceltool

import (
	"fmt"
	"io"

	"github.com/lingEric/exceltool/pkg/exceltool/codec"
	"github.com/lingEric/exceltool/pkg/exceltool/document"
	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/paging"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
	"github.com/lingEric/exceltool/pkg/exceltool/validation"
)

// Export renders records into a new workbook. The caller owns the
// returned workbook and must close it.
func Export[T any](records []T, s *schema.Schema[T], opts Options) (*document.Workbook, error) {
	wb := document.New(opts.SheetPrefix)
	if err := ExportTo(wb, records, s, opts); err != nil {
		wb.Close()
		return nil, err
	}
	return wb, nil
}

// ExportWrite renders records and streams the workbook to w.
func ExportWrite[T any](w io.Writer, records []T, s *schema.Schema[T], opts Options) error {
	wb, err := Export(records, s, opts)
	if err != nil {
		return err
	}
	defer wb.Close()
	return wb.Write(w)
}

// ExportFile renders records and saves the workbook at path.
func ExportFile[T any](path string, records []T, s *schema.Schema[T], opts Options) error {
	wb, err := Export(records, s, opts)
	if err != nil {
		return err
	}
	defer wb.Close()
	return wb.SaveAs(path)
}

// ExportTo renders records into doc, one sheet per page of at most
// opts.PageCapacity records. Every sheet carries the title band, the
// header row, column widths, a two-row freeze and the dropdown
// constraints derived from opts. Documents that implement
// document.PrintTitler also repeat the two bands on printed pages.
func ExportTo[T any](doc document.Builder, records []T, s *schema.Schema[T], opts Options) error {
	if err := s.RequireExport(); err != nil {
		return err
	}
	capacity := opts.capacity()
	if capacity > document.MaxRowIndex-paging.FirstDataRow+1 {
		return fmt.Errorf("%w: %d exceeds sheet rows", paging.ErrCapacity, capacity)
	}
	pages, err := paging.Plan(len(records), capacity)
	if err != nil {
		return err
	}

	log := opts.logger()
	log.Info("exporting records",
		"records", len(records),
		"pages", len(pages),
		"columns", len(s.ExportColumns()))

	enc := codec.NewEncoder(s, opts.Coercer, opts.Translations)
	title := opts.Title
	if title == "" {
		title = s.Title()
	}
	var constraints []models.ValidationDescriptor
	if opts.ShouldApplyValidations() {
		constraints = validation.Build(translatable(s, opts.Translations), opts.SelectLists, document.MaxRowIndex)
	}

	for _, p := range pages {
		sheet, err := doc.NewSheet()
		if err != nil {
			return err
		}
		if err := writeFrame(doc, sheet, title, s); err != nil {
			return err
		}
		for i, rec := range paging.Slice(records, p) {
			if err := doc.SetRow(sheet, enc.EncodeRow(&rec, p.RowOffset+i)); err != nil {
				return err
			}
		}
		for _, d := range constraints {
			if d.Column < 0 || d.Column >= enc.Width() {
				continue
			}
			if err := doc.ApplyValidation(sheet, d); err != nil {
				return fmt.Errorf("column %d: %w", d.Column, err)
			}
		}
		log.Debug("sheet written", "sheet", sheet, "from", p.From, "to", p.To)
	}
	return nil
}

// writeFrame lays out the rows every page shares.
func writeFrame[T any](doc document.Builder, sheet int, title string, s *schema.Schema[T]) error {
	headers := s.Headers()
	titleRow := models.Row{
		Index: paging.TitleRow,
		Cells: []models.CellValue{models.Text(title)},
	}
	if err := doc.SetRow(sheet, titleRow); err != nil {
		return err
	}
	if len(headers) > 1 {
		if err := doc.MergeRange(sheet, paging.TitleRow, paging.TitleRow, 0, len(headers)-1); err != nil {
			return err
		}
	}

	headerRow := models.Row{Index: paging.HeaderRow, Cells: make([]models.CellValue, len(headers))}
	for i, h := range headers {
		headerRow.Cells[i] = models.Text(h)
	}
	if err := doc.SetRow(sheet, headerRow); err != nil {
		return err
	}
	for i, w := range s.Widths() {
		if err := doc.SetColumnWidth(sheet, i, w); err != nil {
			return err
		}
	}
	if err := doc.FreezeRows(sheet, paging.FirstDataRow); err != nil {
		return err
	}
	if pt, ok := doc.(document.PrintTitler); ok {
		return pt.RepeatRows(sheet, paging.FirstDataRow)
	}
	return nil
}

// translatable keeps the table entries of columns marked translatable.
func translatable[T any](s *schema.Schema[T], table models.TranslationTable) models.TranslationTable {
	if len(table) == 0 {
		return nil
	}
	out := make(models.TranslationTable, len(table))
	for i, col := range s.ExportColumns() {
		if m, ok := table[i]; ok && col.Translatable {
			out[i] = m
		}
	}
	return out
}
