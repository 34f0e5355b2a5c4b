// Package coerce converts between native Go values and spreadsheet cell
// representations.
//
// Encoding renders a value to its canonical string and classifies it as a
// numeric or text cell. Decoding parses cell text into a target type and
// reports, through a tagged Result, whether the conversion succeeded, fell
// back to the raw text, or found nothing to convert.
package coerce

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// ParseFunc converts cell text into a value of a registered type.
type ParseFunc func(raw string) (any, error)

// FormatFunc renders a value of a registered type as cell text.
type FormatFunc func(v any) string

// TypeCodec binds a parser and an optional formatter to a native type.
type TypeCodec struct {
	Parse  ParseFunc
	Format FormatFunc
}

// Coercer holds the registered native types. It is immutable once built and
// safe for concurrent use.
type Coercer struct {
	types map[reflect.Type]TypeCodec
}

// Option configures a Coercer under construction.
type Option func(*Coercer)

// WithType registers a codec for t, replacing any previous registration.
func WithType(t reflect.Type, codec TypeCodec) Option {
	return func(c *Coercer) {
		c.types[t] = codec
	}
}

// New returns a Coercer with the default registrations followed by opts.
func New(opts ...Option) *Coercer {
	c := &Coercer{types: make(map[reflect.Type]TypeCodec)}
	for t, codec := range defaultTypes() {
		c.types[t] = codec
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default is the Coercer used when callers do not supply one.
var Default = New()

func defaultTypes() map[reflect.Type]TypeCodec {
	return map[reflect.Type]TypeCodec{
		reflect.TypeFor[time.Time](): {
			Parse: func(raw string) (any, error) { return cast.ToTimeE(raw) },
			Format: func(v any) string {
				return v.(time.Time).Format(time.RFC3339)
			},
		},
		reflect.TypeFor[time.Duration](): {
			Parse: func(raw string) (any, error) { return cast.ToDurationE(raw) },
			Format: func(v any) string {
				return v.(time.Duration).String()
			},
		},
		reflect.TypeFor[uuid.UUID](): {
			Parse: func(raw string) (any, error) { return uuid.Parse(raw) },
			Format: func(v any) string {
				return v.(uuid.UUID).String()
			},
		},
	}
}

func (c *Coercer) lookup(t reflect.Type) (TypeCodec, bool) {
	if c == nil {
		c = Default
	}
	codec, ok := c.types[t]
	return codec, ok
}
