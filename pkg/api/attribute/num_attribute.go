package attribute

import "fmt"

// NumericType represents the type of numeric value
type NumericType int

const (
	// Float represents a float64 value
	Float NumericType = iota
	// Decimal represents an arbitrary decimal value with fixed precision
	Decimal
)

func (t NumericType) String() string {
	switch t {
	case Float:
		return "float"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// BaseAttribute is any value that renders itself as SQL literal text.
type BaseAttribute interface {
	fmt.Stringer
}

type NumericAttribute interface {
	BaseAttribute
	// GetNumericType returns the type of numeric value
	GetNumericType() NumericType
}
