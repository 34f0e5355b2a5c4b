package codec

import (
	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
)

// Encoder turns records into rows of cells. It holds only read-only state
// and may be shared.
type Encoder[T any] struct {
	columns []schema.Column[T]
	coercer *coerce.Coercer
	table   models.TranslationTable
}

// NewEncoder returns an encoder over the export columns of s. A nil
// coercer selects coerce.Default; table may be nil.
func NewEncoder[T any](s *schema.Schema[T], c *coerce.Coercer, table models.TranslationTable) *Encoder[T] {
	if c == nil {
		c = coerce.Default
	}
	return &Encoder[T]{
		columns: s.ExportColumns(),
		coercer: c,
		table:   table,
	}
}

// Width returns the number of cells per encoded row.
func (e *Encoder[T]) Width() int {
	return len(e.columns)
}

// Encode converts rec into one cell per export column.
func (e *Encoder[T]) Encode(rec *T) []models.CellValue {
	cells := make([]models.CellValue, len(e.columns))
	for i := range e.columns {
		col := &e.columns[i]
		v := col.Value(rec)
		if col.Translatable {
			v = Translate(e.coercer, e.table, i, v)
		}
		cells[i] = e.coercer.Encode(v)
	}
	return cells
}

// EncodeRow encodes rec and places it at the given sheet row.
func (e *Encoder[T]) EncodeRow(rec *T, rowOffset int) models.Row {
	return models.Row{Index: rowOffset, Cells: e.Encode(rec)}
}
