// Package schema describes how a record type maps onto spreadsheet columns.
//
// A Schema is built once per record type, either from an explicit
// Definition or from struct tags (see Of), and is immutable afterwards:
// it can be shared across any number of concurrent export and import calls.
package schema

import (
	"fmt"
	"reflect"
	"slices"
)

// Definition declares the mapping for record type T.
type Definition[T any] struct {
	// Title is written to the title band of every exported sheet.
	Title string
	// Export is the export marker. Exports fail without it.
	Export bool
	// New constructs an empty record for import. When nil the zero value
	// of T is used.
	New func() T
	// Fields lists the columns in declaration order.
	Fields []Field[T]
}

// Schema is the validated, ordered column set for record type T.
type Schema[T any] struct {
	title      string
	exportable bool
	newFn      func() T
	columns    []Column[T]
	exports    []Column[T]
	imports    []Column[T]
}

// Build validates def and returns its Schema.
func Build[T any](def Definition[T]) (*Schema[T], error) {
	cols := make([]Column[T], 0, len(def.Fields))
	for i, f := range def.Fields {
		c := f.col
		if c.Field == "" {
			c.Field = fmt.Sprintf("#%d", i)
		}
		if c.read == nil {
			return nil, newError[T](c.Field, ErrUnbound)
		}
		if f.imported && c.ImportIndex < 0 {
			return nil, newError[T](c.Field, fmt.Errorf("%w: %d", ErrNegativeImportIndex, c.ImportIndex))
		}
		cols = append(cols, c)
	}
	return assemble(def.Title, def.Export, def.New, cols)
}

// MustBuild is like Build but panics on error. It is intended for
// package-level schema variables.
func MustBuild[T any](def Definition[T]) *Schema[T] {
	s, err := Build(def)
	if err != nil {
		panic(err)
	}
	return s
}

// assemble checks the invariants shared by every construction path and
// splits the columns into export and import views.
func assemble[T any](title string, exportable bool, newFn func() T, cols []Column[T]) (*Schema[T], error) {
	s := &Schema[T]{
		title:      title,
		exportable: exportable,
		newFn:      newFn,
		columns:    cols,
	}

	seen := make(map[int]string)
	for _, c := range cols {
		if c.exported {
			if c.Name == "" {
				return nil, newError[T](c.Field, ErrEmptyName)
			}
			if c.Width <= 0 {
				c.Width = DefaultWidth
			}
			s.exports = append(s.exports, c)
		}
		if c.Imported() {
			if other, dup := seen[c.ImportIndex]; dup {
				return nil, newError[T](c.Field, fmt.Errorf("%w: %d also used by %s", ErrDuplicateImportIndex, c.ImportIndex, other))
			}
			seen[c.ImportIndex] = c.Field
			s.imports = append(s.imports, c)
		}
	}
	return s, nil
}

// Title returns the title band text.
func (s *Schema[T]) Title() string { return s.title }

// Exportable reports whether the export marker is present.
func (s *Schema[T]) Exportable() bool { return s.exportable }

// RequireExport returns a schema error unless the export marker is present.
func (s *Schema[T]) RequireExport() error {
	if !s.exportable {
		return newError[T]("", ErrNotExportable)
	}
	return nil
}

// Columns returns every declared column in declaration order.
func (s *Schema[T]) Columns() []Column[T] { return slices.Clone(s.columns) }

// ExportColumns returns the export columns in declaration order.
func (s *Schema[T]) ExportColumns() []Column[T] { return slices.Clone(s.exports) }

// ImportColumns returns the import-indexed columns in declaration order.
func (s *Schema[T]) ImportColumns() []Column[T] { return slices.Clone(s.imports) }

// Headers returns the export display names in column order.
func (s *Schema[T]) Headers() []string {
	names := make([]string, len(s.exports))
	for i, c := range s.exports {
		names[i] = c.Name
	}
	return names
}

// Widths returns the export width hints in column order.
func (s *Schema[T]) Widths() []int {
	widths := make([]int, len(s.exports))
	for i, c := range s.exports {
		widths[i] = c.Width
	}
	return widths
}

// Constructor returns the function that creates empty records for import.
// Types whose zero value is unusable (interfaces, funcs, channels) need an
// explicit constructor; pointer and map types are allocated.
func (s *Schema[T]) Constructor() (func() T, error) {
	if s.newFn != nil {
		return s.newFn, nil
	}
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, newError[T]("", ErrNotConstructible)
	case reflect.Pointer:
		return func() T { return reflect.New(t.Elem()).Interface().(T) }, nil
	case reflect.Map:
		return func() T { return reflect.MakeMap(t).Interface().(T) }, nil
	}
	return func() T {
		var zero T
		return zero
	}, nil
}
