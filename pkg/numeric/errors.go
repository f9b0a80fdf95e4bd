package numeric

import "errors"

var (
	// ErrEmpty is returned when the text holds nothing but whitespace
	ErrEmpty = errors.New("empty numeric value")
	// ErrInvalidNumber is returned when the text is not a plain decimal number
	ErrInvalidNumber = errors.New("invalid numeric value")
	// ErrNonFinite is returned for infinities, NaN and out of range values
	ErrNonFinite = errors.New("non-finite numeric value")
)
