package numeric

import (
	"testing"

	attr "repuestosql/pkg/api/attribute"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatAttribute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    []ParseOption
		want    string
		wantErr error
	}{
		{"Integer", "10", nil, "10.0", nil},
		{"Decimal", "2.50", nil, "2.5", nil},
		{"Surrounding whitespace", "  7.25\t", nil, "7.25", nil},
		{"Leading plus", "+3", nil, "3.0", nil},
		{"Negative", "-1.5", nil, "-1.5", nil},
		{"Leading dot", ".5", nil, "0.5", nil},
		{"Trailing dot", "5.", nil, "5.0", nil},
		{"Exponent", "1e3", nil, "1000.0", nil},
		{"Small keeps fixed notation", "0.0001", nil, "0.0001", nil},
		{"Smaller switches to exponent", "0.00001", nil, "1e-05", nil},
		{"Large keeps fixed notation", "1234567890123456", nil, "1234567890123456.0", nil},
		{"Larger switches to exponent", "1e16", nil, "1e+16", nil},
		{"Underscore between digits", "1_000", nil, "1000.0", nil},
		{"Information separators trimmed", "\x1f5\x1f", nil, "5.0", nil},
		{"No-break space trimmed", "\u00a012\u00a0", nil, "12.0", nil},
		{"Arabic-Indic digits", "١٢", nil, "12.0", nil},
		{"Fullwidth digits with dot", "３.５", nil, "3.5", nil},
		{"Empty", "", nil, "", ErrEmpty},
		{"Blank", "   ", nil, "", ErrEmpty},
		{"Letters", "abc", nil, "", ErrInvalidNumber},
		{"Comma without option", "4310,5", nil, "", ErrInvalidNumber},
		{"Comma with option", "4310,5", []ParseOption{WithDecimalComma()}, "4310.5", nil},
		{"Thousands with option", "1.234,75", []ParseOption{WithDecimalComma()}, "1234.75", nil},
		{"Dot with comma option", "10.5", []ParseOption{WithDecimalComma()}, "10.5", nil},
		{"Leading underscore", "_1", nil, "", ErrInvalidNumber},
		{"Double underscore", "1__0", nil, "", ErrInvalidNumber},
		{"Hex literal", "0x1p-2", nil, "", ErrInvalidNumber},
		{"Infinity", "inf", nil, "", ErrNonFinite},
		{"NaN", "NaN", nil, "", ErrNonFinite},
		{"Overflow", "1e400", nil, "", ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloatAttribute(tt.input, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, attr.Float, got.GetNumericType())
		})
	}
}

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"", ErrEmpty},
		{" ", ErrEmpty},
		{"n/a", ErrInvalidNumber},
		{"1,5", ErrInvalidNumber},
		{"--1", ErrInvalidNumber},
		{"inf", ErrNonFinite},
	}
	for _, tt := range tests {
		got, err := SafeFloat(tt.input)
		assert.ErrorIs(t, err, tt.wantErr, "input %q", tt.input)
		require.NotNil(t, got, "input %q", tt.input)
		assert.Equal(t, "0.0", got.String(), "input %q", tt.input)
		assert.Same(t, ZeroFloat, got, "input %q", tt.input)
	}

	got, err := SafeFloat(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, "12.0", got.String())
}

func TestParseDecimalAttribute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    []ParseOption
		want    string
		wantErr error
	}{
		{"Integer", "10", nil, "10.0", nil},
		{"Keeps trailing zeros", "12.3400", nil, "12.3400", nil},
		{"Exact digits", "0.1000000000000000055511", nil, "0.1000000000000000055511", nil},
		{"Exponent", "1E+3", nil, "1000.0", nil},
		{"Negative exponent", "15e-1", nil, "1.5", nil},
		{"Comma with option", "2,05", []ParseOption{WithDecimalComma()}, "2.05", nil},
		{"Devanagari digits", "४२.०", nil, "42.0", nil},
		{"Separators only", "\x1c\x1d", nil, "", ErrEmpty},
		{"Empty", "", nil, "", ErrEmpty},
		{"Letters", "ten", nil, "", ErrInvalidNumber},
	}

	for _, special := range []string{"Infinity", "-Inf", "NaN"} {
		_, err := ParseDecimalAttribute(special)
		assert.Error(t, err, "input %q", special)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalAttribute(tt.input, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, attr.Decimal, got.GetNumericType())
		})
	}
}

func TestSafeDecimal(t *testing.T) {
	got, err := SafeDecimal("")
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, "0.0", got.String())
	assert.Equal(t, attr.Decimal, got.GetNumericType())

	got, err = SafeDecimal("x")
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Same(t, ZeroDecimal, got)

	got, err = SafeDecimal("NaN")
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, "0.0", got.String())

	got, err = SafeDecimal("3.10")
	require.NoError(t, err)
	assert.Equal(t, "3.10", got.String())
}

func TestNumericTypeString(t *testing.T) {
	assert.Equal(t, "float", attr.Float.String())
	assert.Equal(t, "decimal", attr.Decimal.String())
	assert.Equal(t, "unknown", attr.NumericType(7).String())
}
