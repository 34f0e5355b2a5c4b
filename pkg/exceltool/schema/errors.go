package schema

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotExportable indicates an export was requested for a record type
	// that carries no export marker.
	ErrNotExportable = errors.New("record type is not marked for export")
	// ErrEmptyName indicates an export field without a display name.
	ErrEmptyName = errors.New("export field has an empty display name")
	// ErrNegativeImportIndex indicates an import index below zero.
	ErrNegativeImportIndex = errors.New("import index must be non-negative")
	// ErrDuplicateImportIndex indicates two fields share an import index.
	ErrDuplicateImportIndex = errors.New("duplicate import index")
	// ErrUnbound indicates a field built without an accessor.
	ErrUnbound = errors.New("field has no accessor")
	// ErrNotConstructible indicates the record type has no usable zero value
	// and no constructor was supplied.
	ErrNotConstructible = errors.New("record type cannot be constructed")
	// ErrNotStruct indicates struct tags were requested on a non-struct type.
	ErrNotStruct = errors.New("record type is not a struct")
	// ErrUnexportedField indicates a tagged field that reflection cannot access.
	ErrUnexportedField = errors.New("tagged field is unexported")
	// ErrBadTag indicates a malformed excel struct tag.
	ErrBadTag = errors.New("malformed excel tag")
	// ErrMethod indicates a getter or setter that is missing or has the
	// wrong signature.
	ErrMethod = errors.New("invalid accessor method")
	// ErrAssign indicates a decoded value that does not fit its field.
	ErrAssign = errors.New("value not assignable to field")
)

// Error is a fatal schema problem. It aborts the export or import call
// that discovered it.
type Error struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema %v: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("schema %v: field %s: %v", e.Type, e.Field, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError[T any](field string, err error) *Error {
	return &Error{Type: reflect.TypeFor[T](), Field: field, Err: err}
}
