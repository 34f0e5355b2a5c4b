// Package paging splits a record collection across sheets under a fixed
// row ceiling and fixes the row layout of each sheet.
package paging

import (
	"errors"
	"fmt"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

// Sheet layout. Every page reserves the first two rows; records start on
// the third.
const (
	TitleRow     = 0
	HeaderRow    = 1
	FirstDataRow = 2
)

// DefaultCapacity is the number of records written to one sheet.
const DefaultCapacity = 65530

// ErrCapacity is returned for a page capacity below one.
var ErrCapacity = errors.New("page capacity must be positive")

// Count returns the number of pages for n records, never less than one.
// A capacity below one counts as a single page; Plan rejects it.
func Count(n, capacity int) int {
	if n <= 0 || capacity <= 0 {
		return 1
	}
	return (n + capacity - 1) / capacity
}

// Plan partitions n records into pages of at most capacity records.
// An empty collection still yields one empty page.
func Plan(n, capacity int) ([]models.Page, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	if n < 0 {
		n = 0
	}
	pages := make([]models.Page, Count(n, capacity))
	for p := range pages {
		pages[p] = models.Page{
			Index:     p,
			From:      min(p*capacity, n),
			To:        min((p+1)*capacity, n),
			RowOffset: FirstDataRow,
		}
	}
	return pages, nil
}

// Slice returns the records that belong to page p.
func Slice[T any](records []T, p models.Page) []T {
	return records[p.From:p.To]
}
