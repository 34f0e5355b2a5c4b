package coerce

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Status tags the outcome of decoding one cell.
type Status uint8

const (
	// Absent means the cell was missing or empty; nothing is delivered.
	Absent Status = iota
	// Converted means Value holds a value of the target type.
	Converted
	// FellBack means conversion failed and Value holds the raw text.
	FellBack
)

func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Converted:
		return "converted"
	case FellBack:
		return "fell back"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Result is the tagged outcome of Decode.
type Result struct {
	Status Status
	// Value is the converted value, or the raw text when Status is FellBack.
	Value any
	// Raw is the cell text as read from the sheet.
	Raw string
	// Err is a *Error when Status is FellBack.
	Err error
}

// Missing returns the Result for a cell the row does not have.
func Missing() Result {
	return Result{Status: Absent}
}

// ErrUnsupportedType is wrapped when no conversion exists for a target type.
var ErrUnsupportedType = errors.New("unsupported target type")

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Decode converts raw into a value of type t. Conversion failures do not
// return an error: the Result falls back to the raw text and records why.
// Empty text is Absent unless t is string-kinded.
func (c *Coercer) Decode(raw string, t reflect.Type) Result {
	if raw == "" && baseKind(t) != reflect.String {
		return Result{Status: Absent}
	}
	v, err := c.convert(raw, t)
	if err != nil {
		return Result{
			Status: FellBack,
			Value:  raw,
			Raw:    raw,
			Err:    &Error{Raw: raw, Target: t, Err: err},
		}
	}
	return Result{Status: Converted, Value: v, Raw: raw}
}

func baseKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind()
}

func (c *Coercer) convert(raw string, t reflect.Type) (any, error) {
	if codec, ok := c.lookup(t); ok && codec.Parse != nil {
		v, err := codec.Parse(raw)
		if err != nil {
			return nil, err
		}
		return as(v, t)
	}

	if t.Kind() == reflect.Pointer {
		inner, err := c.convert(raw, t.Elem())
		if err != nil {
			return nil, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(reflect.ValueOf(inner))
		return p.Interface(), nil
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		p := reflect.New(t)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return nil, err
		}
		return p.Elem().Interface(), nil
	}

	s := strings.TrimSpace(raw)
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(raw).Convert(t).Interface(), nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(b).Convert(t).Interface(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := parseInt(s, t.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := parseUint(s, t.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(t).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
}

// parseInt accepts integral decimal forms such as "20.0", which is how
// some writers store whole numbers.
func parseInt(s string, bits int) (int64, error) {
	n, err := strconv.ParseInt(s, 10, bits)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != math.Trunc(f) {
		return 0, err
	}
	lim := math.Ldexp(1, bits-1)
	if f < -lim || f >= lim {
		return 0, err
	}
	return int64(f), nil
}

func parseUint(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != math.Trunc(f) || f < 0 || f >= math.Ldexp(1, bits) {
		return 0, err
	}
	return uint64(f), nil
}

// as converts v to t when a registered parser returns a related type.
func as(v any, t reflect.Type) (any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Zero(t).Interface(), nil
	}
	if rv.Type() == t {
		return v, nil
	}
	if rv.Type().ConvertibleTo(t) {
		return rv.Convert(t).Interface(), nil
	}
	return nil, fmt.Errorf("%w: parser returned %T for %v", ErrUnsupportedType, v, t)
}
