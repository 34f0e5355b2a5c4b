// Package validation derives dropdown constraints for exported columns.
package validation

import (
	"maps"
	"slices"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
	"github.com/lingEric/exceltool/pkg/exceltool/paging"
)

// Build returns one descriptor per column that has permitted values,
// ordered by column index. An explicit list in lists takes precedence over
// the display values of table for the same column. Each descriptor covers
// rows from the first data row through lastRow.
func Build(table models.TranslationTable, lists map[int][]string, lastRow int) []models.ValidationDescriptor {
	columns := make(map[int][]string, len(table)+len(lists))
	for col, m := range table {
		keys := slices.Sorted(maps.Keys(m))
		values := make([]string, len(keys))
		for i, k := range keys {
			values[i] = m[k]
		}
		columns[col] = values
	}
	for col, values := range lists {
		columns[col] = values
	}

	var out []models.ValidationDescriptor
	for _, col := range slices.Sorted(maps.Keys(columns)) {
		allowed := distinct(columns[col])
		if len(allowed) == 0 {
			continue
		}
		out = append(out, models.ValidationDescriptor{
			Column:        col,
			AllowedValues: allowed,
			RowFrom:       paging.FirstDataRow,
			RowTo:         lastRow,
		})
	}
	return out
}

// distinct keeps the first occurrence of each value.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
