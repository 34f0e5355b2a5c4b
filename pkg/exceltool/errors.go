package exceltool

import (
	"errors"

	"github.com/lingEric/exceltool/pkg/exceltool/codec"
	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
	"github.com/lingEric/exceltool/pkg/exceltool/document"
	"github.com/lingEric/exceltool/pkg/exceltool/schema"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// SchemaError is fatal for the call that returns it: a missing export
// marker, an invalid column declaration, or a record type that cannot be
// constructed for import.
type SchemaError = schema.Error

// CoercionError describes a cell that fell back to its raw text.
type CoercionError = coerce.Error

// RowDecodeError identifies the row and column that failed to decode.
type RowDecodeError = codec.RowError

// DocumentIOError wraps a failure of the underlying document container.
type DocumentIOError = document.IOError

// ErrSheetNotFound indicates an import sheet index outside the document.
var ErrSheetNotFound = document.ErrSheetNotFound
