// Package textutil holds the small text normalization helpers shared by the
// numeric and SQL value packages.
package textutil

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is white space for trimming purposes: the Unicode
// White_Space set plus the ASCII information separators U+001C to U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Trim removes leading and trailing white space as defined by IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// ASCIIDigits replaces every decimal digit outside ASCII (Arabic-Indic,
// Devanagari, fullwidth and so on) with its ASCII equivalent. Other runes are
// kept.
func ASCIIDigits(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r < 0x80 || !unicode.Is(unicode.Nd, r) {
			return r
		}
		return '0' + digitValue(r)
	}, s)
}

// digitValue returns the value of a Unicode decimal digit. Every Nd range
// starts at a zero and runs in blocks of ten.
func digitValue(r rune) rune {
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}
	return 0
}
