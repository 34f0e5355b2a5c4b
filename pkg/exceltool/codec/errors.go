package codec

import "fmt"

// RowError reports a row that could not be decoded into a record.
type RowError struct {
	// Row is the 0-based sheet row.
	Row int
	// Column is the 0-based cell index.
	Column int
	Field  string
	Raw    string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %d (%s): cannot decode %q: %v", e.Row, e.Column, e.Field, e.Raw, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
