// Package exceltool maps record collections to and from spreadsheet
// documents using declarative column schemas.
package exceltool

import (
	"io"
	"log/slog"

	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/paging"
)

// Policy selects how Import reacts to a row that cannot be decoded.
type Policy string

const (
	// FailFast aborts the import on the first undecodable row.
	FailFast Policy = "fail-fast"
	// SkipInvalid logs and skips undecodable rows.
	SkipInvalid Policy = "skip-invalid"
)

// Options configures Export and Import.
type Options struct {
	// Title replaces the schema title in the title band when non-empty.
	Title string
	// PageCapacity is the number of records per sheet.
	// Zero selects paging.DefaultCapacity.
	PageCapacity int
	// SheetPrefix names exported sheets. Empty selects "Sheet".
	SheetPrefix string
	// Translations rewrites translatable column values on export.
	Translations models.TranslationTable
	// SelectLists supplies permitted values per column, taking precedence
	// over the translation table for dropdown constraints.
	SelectLists map[int][]string
	// Validations specifies whether dropdown constraints are attached.
	// If nil, defaults to true.
	Validations *bool
	// Policy selects the import failure policy. Empty selects FailFast.
	Policy Policy
	// OnSkip is called for every row skipped under SkipInvalid.
	OnSkip func(err error)
	// Coercer converts values. If nil, coerce.Default is used.
	Coercer *coerce.Coercer
	// Logger receives progress messages. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default export and import options.
func DefaultOptions() Options {
	return Options{
		PageCapacity: paging.DefaultCapacity,
		Policy:       FailFast,
	}
}

// ShouldApplyValidations returns whether dropdown constraints are attached.
func (o Options) ShouldApplyValidations() bool {
	if o.Validations != nil {
		return *o.Validations
	}
	return true
}

// ShouldSkipInvalid returns whether undecodable rows are skipped.
func (o Options) ShouldSkipInvalid() bool {
	return o.Policy == SkipInvalid
}

func (o Options) capacity() int {
	if o.PageCapacity == 0 {
		return paging.DefaultCapacity
	}
	return o.PageCapacity
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
