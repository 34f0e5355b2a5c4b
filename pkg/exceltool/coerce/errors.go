package coerce

import (
	"fmt"
	"reflect"
)

// Error records a cell that could not be converted to its target type.
// It never aborts an export; on import it travels inside a FellBack Result.
type Error struct {
	Raw    string
	Target reflect.Type
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot convert %q to %v: %v", e.Raw, e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
