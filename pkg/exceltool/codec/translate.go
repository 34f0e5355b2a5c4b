// Package codec encodes records into spreadsheet rows and decodes rows
// back into records, applying a schema, coercion and value translation.
package codec

import (
	"github.com/lingEric/exceltool/pkg/exceltool/coerce"
	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

// Translate rewrites value through table for export column col. A value
// with no table entry passes through unchanged. Translation is export-only;
// imports receive the display value as written.
func Translate(c *coerce.Coercer, table models.TranslationTable, col int, value any) any {
	if display, ok := table.Lookup(col, c.Format(value)); ok {
		return display
	}
	return value
}
