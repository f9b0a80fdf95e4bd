package numeric

import (
	"fmt"
	"strings"

	"repuestosql/pkg/textutil"
)

type parseConfig struct {
	decimalComma bool
}

// ParseOption adjusts how numeric text is cleaned before parsing.
type ParseOption func(*parseConfig)

// WithDecimalComma accepts ',' as the decimal separator. When a comma is
// present every '.' is taken as a thousands separator and dropped.
func WithDecimalComma() ParseOption {
	return func(c *parseConfig) {
		c.decimalComma = true
	}
}

// cleanNumber trims value, maps decimal digits of other scripts to ASCII and
// reduces it to the syntax accepted by both strconv.ParseFloat and apd:
// optional sign, digits, one '.', exponent.
// Underscores are allowed between digits and removed. Hex literals are refused.
func cleanNumber(value string, opts []ParseOption) (string, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := textutil.Trim(value)
	if s == "" {
		return "", ErrEmpty
	}
	s = textutil.ASCIIDigits(s)

	if cfg.decimalComma && strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}

	if strings.Contains(s, "_") {
		for i := 0; i < len(s); i++ {
			if s[i] != '_' {
				continue
			}
			if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
				return "", fmt.Errorf("%w: %q", ErrInvalidNumber, value)
			}
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	return s, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
