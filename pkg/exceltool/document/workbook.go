package document

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetPrefix names exported sheets Sheet1, Sheet2, ...
const DefaultSheetPrefix = "Sheet"

// Workbook is an excelize-backed document. A Workbook is owned by a single
// export or import call at a time.
type Workbook struct {
	f      *excelize.File
	sheets []string
	prefix string

	// fresh is true until the default sheet of a new file is claimed.
	fresh bool

	style  int
	styled bool

	rows map[int][][]string
	// present lists stored row indexes per sheet name; nil until scanned.
	present map[string]map[int]struct{}
}

// New returns an empty workbook whose sheets are named prefix1, prefix2, ...
// An empty prefix selects DefaultSheetPrefix.
func New(prefix string) *Workbook {
	if prefix == "" {
		prefix = DefaultSheetPrefix
	}
	f := excelize.NewFile()
	return &Workbook{
		f:      f,
		sheets: []string{f.GetSheetName(0)},
		prefix: prefix,
		fresh:  true,
		rows:   make(map[int][][]string),
	}
}

// Open reads a workbook from r.
func Open(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}
	return wrap(f), nil
}

// OpenFile reads a workbook from path.
func OpenFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return wrap(f), nil
}

func wrap(f *excelize.File) *Workbook {
	return &Workbook{
		f:      f,
		sheets: f.GetSheetList(),
		prefix: DefaultSheetPrefix,
		rows:   make(map[int][][]string),
	}
}

// File exposes the underlying excelize file for styling beyond the
// engine's needs.
func (w *Workbook) File() *excelize.File {
	return w.f
}

// SheetName returns the name of the sheet at index.
func (w *Workbook) SheetName(index int) (string, error) {
	if index < 0 || index >= len(w.sheets) {
		return "", fmt.Errorf("%w: index %d of %d", ErrSheetNotFound, index, len(w.sheets))
	}
	return w.sheets[index], nil
}

// Write serializes the workbook as xlsx to out.
func (w *Workbook) Write(out io.Writer) error {
	if err := w.f.Write(out); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// SaveAs writes the workbook to path, creating or truncating it.
func (w *Workbook) SaveAs(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err := w.Write(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// Close releases temporary files held by the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}
