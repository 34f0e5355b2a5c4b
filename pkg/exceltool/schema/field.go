package schema

import (
	"fmt"
	"reflect"

	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
)

// Field is a column declaration under construction. Build one with Bind
// and chain the options; each option returns an updated copy.
type Field[T any] struct {
	col      Column[T]
	imported bool
}

// Bind declares a column over the field that ref points into.
//
//	schema.Bind(func(s *Student) *int { return &s.Age }).Export("age").ImportAt(1)
func Bind[T, V any](ref func(*T) *V) Field[T] {
	target := reflect.TypeFor[V]()
	return Field[T]{col: Column[T]{
		Width:       DefaultWidth,
		ImportIndex: NoImport,
		Type:        target,
		read:        func(rec *T) any { return *ref(rec) },
		assign: func(rec *T, r coerce.Result) error {
			v, ok := r.Value.(V)
			if !ok {
				return fmt.Errorf("%w: %T into %v", ErrAssign, r.Value, target)
			}
			*ref(rec) = v
			return nil
		},
	}}
}

// Export marks the field for export under the given header name.
func (f Field[T]) Export(name string) Field[T] {
	f.col.exported = true
	f.col.Name = name
	if f.col.Field == "" {
		f.col.Field = name
	}
	return f
}

// Width sets the export width hint. Values below one keep DefaultWidth.
func (f Field[T]) Width(units int) Field[T] {
	if units > 0 {
		f.col.Width = units
	}
	return f
}

// Translate marks the field for translation table lookups on export.
func (f Field[T]) Translate() Field[T] {
	f.col.Translatable = true
	return f
}

// ImportAt reads the field from the 0-based cell index on import.
func (f Field[T]) ImportAt(index int) Field[T] {
	f.imported = true
	f.col.ImportIndex = index
	return f
}

// Getter replaces the direct field read on export.
func (f Field[T]) Getter(fn func(*T) any) Field[T] {
	f.col.override = fn
	return f
}

// Setter replaces direct assignment on import. The setter receives the
// tagged decode result, including raw text when conversion fell back.
func (f Field[T]) Setter(fn func(*T, coerce.Result) error) Field[T] {
	f.col.setter = fn
	return f
}

// Named sets the field name used in error messages.
func (f Field[T]) Named(name string) Field[T] {
	f.col.Field = name
	return f
}
