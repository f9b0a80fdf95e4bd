package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	attr "repuestosql/pkg/api/attribute"
)

var (
	_ attr.NumericAttribute = (*floatAttribute)(nil)

	// ZeroFloat is the value numeric cells fall back to in float mode.
	ZeroFloat attr.NumericAttribute = &floatAttribute{}
)

type floatAttribute struct {
	value float64
}

// GetNumericType implements attribute.NumericAttribute.
func (f *floatAttribute) GetNumericType() attr.NumericType {
	return attr.Float
}

// String implements attribute.NumericAttribute.
// The shortest round-trip digits are used, always with a fractional part;
// exponent notation is used below 1e-4 and from 1e16 upward.
func (f *floatAttribute) String() string {
	sci := strconv.FormatFloat(f.value, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f.value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseFloatAttribute creates a new float attribute from a string value.
func ParseFloatAttribute(value string, opts ...ParseOption) (attr.NumericAttribute, error) {
	s, err := cleanNumber(value, opts)
	if err != nil {
		return nil, err
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return nil, fmt.Errorf("%w: %q", ErrNonFinite, value)
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, fmt.Errorf("%w: %q", ErrNonFinite, value)
	}
	return &floatAttribute{value: v}, nil
}

// SafeFloat parses value as a float. It always returns a usable attribute:
// ZeroFloat when the text is empty or unparseable, together with the reason.
func SafeFloat(value string, opts ...ParseOption) (attr.NumericAttribute, error) {
	v, err := ParseFloatAttribute(value, opts...)
	if err != nil {
		return ZeroFloat, err
	}
	return v, nil
}
