package codec

import (
	"fmt"

	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
)

// Decoder turns rows of cell text into records.
type Decoder[T any] struct {
	columns []schema.Column[T]
	coercer *coerce.Coercer
	newFn   func() T
}

// NewDecoder returns a decoder over the import columns of s. It fails with
// a schema error when T cannot be constructed, before any row is read.
func NewDecoder[T any](s *schema.Schema[T], c *coerce.Coercer) (*Decoder[T], error) {
	newFn, err := s.Constructor()
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = coerce.Default
	}
	return &Decoder[T]{
		columns: s.ImportColumns(),
		coercer: c,
		newFn:   newFn,
	}, nil
}

// Decode builds a record from cells. Cells are addressed by each column's
// import index; indexes past the end of the row decode as absent.
// row is the sheet row used in error reports.
func (d *Decoder[T]) Decode(row int, cells []string) (T, error) {
	rec := d.newFn()
	for i := range d.columns {
		col := &d.columns[i]
		r := coerce.Missing()
		if col.ImportIndex < len(cells) {
			r = d.coercer.Decode(cells[col.ImportIndex], col.Type)
		}
		if err := col.Deliver(&rec, r); err != nil {
			if r.Err != nil {
				err = fmt.Errorf("%w: %w", err, r.Err)
			}
			var zero T
			return zero, &RowError{
				Row:    row,
				Column: col.ImportIndex,
				Field:  col.Field,
				Raw:    r.Raw,
				Err:    err,
			}
		}
	}
	return rec, nil
}
