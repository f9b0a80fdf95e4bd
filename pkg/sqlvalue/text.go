// Package sqlvalue renders record cells as SQL literal text.
package sqlvalue

import (
	"strings"

	attr "repuestosql/pkg/api/attribute"
	"repuestosql/pkg/textutil"
)

// Null is the literal emitted for absent cells.
const Null = "NULL"

var _ attr.BaseAttribute = text{}

type text struct {
	value string
	valid bool
}

// String renders the cell as a single-quoted literal, or NULL when absent.
func (t text) String() string {
	if !t.valid {
		return Null
	}
	return Quote(t.value)
}

// ParseText trims raw and returns it as an optional text cell.
// Whitespace-only input is absent.
func ParseText(raw string) attr.BaseAttribute {
	v := textutil.Trim(raw)
	return text{value: v, valid: v != ""}
}

// Absent is the text cell of a column missing from a short record.
var Absent attr.BaseAttribute = text{}

// Escape doubles single quotes so s can sit inside a single-quoted literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Quote returns s as a single-quoted SQL string literal.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}

// QuoteIdentifier returns name as a double-quoted SQL identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Bool renders b as a quoted boolean literal, which PostgreSQL accepts for
// boolean columns.
func Bool(b bool) string {
	if b {
		return Quote("true")
	}
	return Quote("false")
}
