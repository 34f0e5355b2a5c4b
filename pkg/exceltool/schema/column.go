package schema

import (
	"reflect"

	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
)

const (
	// DefaultWidth is the column width hint used when none is declared.
	DefaultWidth = 100
	// NoImport marks a column that is not read back on import.
	NoImport = -1
)

// Column binds one record field to one spreadsheet column. Export order
// and import index are independent: a column may take part in either,
// both, or neither direction.
type Column[T any] struct {
	// Name is the header display name. Empty for import-only columns.
	Name string
	// Width is the export width hint; one unit is 20/256 of a character.
	Width int
	// Translatable marks the column for translation table lookups.
	Translatable bool
	// ImportIndex is the 0-based source cell, or NoImport.
	ImportIndex int
	// Field names the source field for diagnostics.
	Field string
	// Type is the decode target type.
	Type reflect.Type

	exported bool
	read     func(*T) any
	override func(*T) any
	assign   func(*T, coerce.Result) error
	setter   func(*T, coerce.Result) error
}

// Exported reports whether the column is written on export.
func (c *Column[T]) Exported() bool { return c.exported }

// Imported reports whether the column is read on import.
func (c *Column[T]) Imported() bool { return c.ImportIndex != NoImport }

// HasOverride reports whether export reads go through a getter.
func (c *Column[T]) HasOverride() bool { return c.override != nil }

// HasSetter reports whether imports deliver through a setter.
func (c *Column[T]) HasSetter() bool { return c.setter != nil }

// Value returns the value to export for rec, preferring the override
// accessor to the direct field read.
func (c *Column[T]) Value(rec *T) any {
	if c.override != nil {
		return c.override(rec)
	}
	return c.read(rec)
}

// Deliver stores a decoded result into rec through the setter when one is
// declared, otherwise by direct assignment. Absent results are skipped and
// leave the field at its zero value.
func (c *Column[T]) Deliver(rec *T, r coerce.Result) error {
	if r.Status == coerce.Absent {
		return nil
	}
	if c.setter != nil {
		return c.setter(rec, r)
	}
	return c.assign(rec, r)
}
