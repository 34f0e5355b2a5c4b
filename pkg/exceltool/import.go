package exceltool

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lingEric/exceltool/pkg/exceltool/codec"
	"github.com/lingEric/exceltool/pkg/exceltool/document"
	"github.com/lingEric/exceltool/pkg/exceltool/paging"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
)

// Import reads the records of one sheet of src. Reading starts at the
// first data row and stops at the first absent row. Under FailFast the
// first undecodable row aborts the import with a *RowDecodeError;
// under SkipInvalid it is logged, reported to opts.OnSkip and skipped.
func Import[T any](src document.Source, sheet int, s *schema.Schema[T], opts Options) ([]T, error) {
	if sheet < 0 || sheet >= src.SheetCount() {
		return nil, fmt.Errorf("%w: %d", document.ErrSheetNotFound, sheet)
	}
	dec, err := codec.NewDecoder(s, opts.Coercer)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	var (
		records []T
		skipped int
	)
	for row := paging.FirstDataRow; ; row++ {
		cells, ok, err := src.RowAt(sheet, row)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		rec, err := dec.Decode(row, cells)
		if err != nil {
			var rowErr *codec.RowError
			if !opts.ShouldSkipInvalid() || !errors.As(err, &rowErr) {
				return nil, err
			}
			skipped++
			log.Warn("skipping row", "row", row, "column", rowErr.Column, "error", err)
			if opts.OnSkip != nil {
				opts.OnSkip(err)
			}
			continue
		}
		records = append(records, rec)
	}

	log.Info("imported records", "sheet", sheet, "records", len(records), "skipped", skipped)
	return records, nil
}

// ImportReader opens a workbook from r and imports one sheet.
func ImportReader[T any](r io.Reader, sheet int, s *schema.Schema[T], opts Options) ([]T, error) {
	wb, err := document.Open(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return Import(wb, sheet, s, opts)
}

// ImportFile opens the workbook at path and imports one sheet.
func ImportFile[T any](path string, sheet int, s *schema.Schema[T], opts Options) ([]T, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	wb, err := document.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return Import(wb, sheet, s, opts)
}
