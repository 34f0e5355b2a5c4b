package coerce

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

// numericPattern is the signed decimal grammar accepted for numeric cells.
var numericPattern = regexp.MustCompile(`^[+-]?(\d+)(\.\d+)?$`)

// IsNumeric reports whether s should be written as a numeric cell.
// Zero-padded integers such as "007" stay text so identifiers keep their
// padding; "0", "0.5" and "90" are numbers.
func IsNumeric(s string) bool {
	m := numericPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	if m[2] != "" {
		return true
	}
	return !(len(m[1]) > 1 && m[1][0] == '0')
}

// Encode renders v and classifies the result as a numeric or text cell.
// It never fails: anything that is not a number becomes text.
func (c *Coercer) Encode(v any) models.CellValue {
	s := c.Format(v)
	if IsNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return models.Numeric(f)
		}
	}
	return models.Text(s)
}

// Format returns the canonical string form of v. Nil values and nil
// pointers render as the empty string.
func (c *Coercer) Format(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		if codec, ok := c.lookup(rv.Type()); ok && codec.Format != nil {
			return codec.Format(rv.Interface())
		}
		rv = rv.Elem()
	}

	if codec, ok := c.lookup(rv.Type()); ok && codec.Format != nil {
		return codec.Format(rv.Interface())
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := textOf(rv); ok {
			return s
		}
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if s, ok := textOf(rv); ok {
			return s
		}
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Slice, reflect.Array:
		if s, ok := textOf(rv); ok {
			return s
		}
		return joinElems(c, rv)
	}

	if s, ok := textOf(rv); ok {
		return s
	}
	return fmt.Sprint(rv.Interface())
}

// textOf uses Stringer or TextMarshaler when the value provides one, so
// named integer enums render through their String method.
func textOf(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	switch t := rv.Interface().(type) {
	case fmt.Stringer:
		return t.String(), true
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	}
	return "", false
}

// joinElems renders a slice or array as comma separated element forms.
func joinElems(c *Coercer, rv reflect.Value) string {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return string(rv.Bytes())
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = c.Format(rv.Index(i).Interface())
	}
	return strings.Join(parts, ",")
}
