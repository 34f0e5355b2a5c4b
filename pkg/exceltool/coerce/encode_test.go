package coerce

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"90", true},
		{"0", true},
		{"0.5", true},
		{"-3.14", true},
		{"+42", true},
		{"007", false},
		{"-07", false},
		{"00.5", true},
		{"", false},
		{" 5", false},
		{"5.", false},
		{".5", false},
		{"1e5", false},
		{"1,000", false},
		{"abc", false},
		{"-", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.input); got != tt.expected {
			t.Errorf("IsNumeric(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

type level int

func (l level) String() string {
	return [...]string{"low", "high"}[l]
}

func TestFormat(t *testing.T) {
	var nilPtr *int
	n := 12
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"nil pointer", nilPtr, ""},
		{"pointer", &n, "12"},
		{"string", "Ann", "Ann"},
		{"bool", true, "true"},
		{"int", -20, "-20"},
		{"uint8", uint8(7), "7"},
		{"float64 no exponent", 1e6, "1000000"},
		{"float64 fraction", 0.1, "0.1"},
		{"float32", float32(2.5), "2.5"},
		{"stringer enum", level(1), "high"},
		{"int slice", []int{90, 85, 70}, "90,85,70"},
		{"bytes", []byte("raw"), "raw"},
		{"duration", 90 * time.Second, "1m30s"},
		{"time", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), "2024-03-01T08:00:00Z"},
		{"uuid", id, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Default.Format(tt.input))
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, models.Numeric(90), Default.Encode(90))
	assert.Equal(t, models.Numeric(0.5), Default.Encode("0.5"))
	assert.Equal(t, models.Numeric(-3.14), Default.Encode(-3.14))
	assert.Equal(t, models.Text("007"), Default.Encode("007"))
	assert.Equal(t, models.Text(""), Default.Encode(nil))
	assert.Equal(t, models.Text(""), Default.Encode(""))
	assert.Equal(t, models.Text("true"), Default.Encode(true))
	assert.Equal(t, models.Text("90,90,90"), Default.Encode([]int{90, 90, 90}))
}

func TestWithTypeOverridesFormat(t *testing.T) {
	c := New(WithType(reflect.TypeFor[level](), TypeCodec{
		Format: func(v any) string { return "L" + v.(level).String() },
	}))

	assert.Equal(t, "Lhigh", c.Format(level(1)))
	assert.Equal(t, "high", Default.Format(level(1)))
}
