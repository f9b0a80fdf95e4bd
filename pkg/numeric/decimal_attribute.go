package numeric

import (
	"fmt"
	"strings"

	attr "repuestosql/pkg/api/attribute"

	apd "github.com/cockroachdb/apd/v3"
)

var (
	_ attr.NumericAttribute = (*decimalAttribute)(nil)

	// ZeroDecimal is the value numeric cells fall back to in decimal mode.
	ZeroDecimal attr.NumericAttribute = &decimalAttribute{}
)

type decimalAttribute struct {
	value apd.Decimal
}

// GetNumericType implements attribute.NumericAttribute.
func (d *decimalAttribute) GetNumericType() attr.NumericType {
	return attr.Decimal
}

// String implements attribute.NumericAttribute.
// Digits are kept exactly as parsed, in plain notation, with a fractional part.
func (d *decimalAttribute) String() string {
	s := d.value.Text('f')
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseDecimalAttribute creates a new decimal attribute from a string value.
func ParseDecimalAttribute(value string, opts ...ParseOption) (attr.NumericAttribute, error) {
	s, err := cleanNumber(value, opts)
	if err != nil {
		return nil, err
	}

	decimalValue, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	if decimalValue.Form != apd.Finite {
		return nil, fmt.Errorf("%w: %q", ErrNonFinite, value)
	}
	return &decimalAttribute{
		value: *decimalValue,
	}, nil
}

// SafeDecimal is SafeFloat for decimal mode, falling back to ZeroDecimal.
func SafeDecimal(value string, opts ...ParseOption) (attr.NumericAttribute, error) {
	v, err := ParseDecimalAttribute(value, opts...)
	if err != nil {
		return ZeroDecimal, err
	}
	return v, nil
}
