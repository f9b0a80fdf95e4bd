package transcoder

import (
	"strings"

	"repuestosql/pkg/numeric"
)

// Option configures a repuestos transcoder
type Option func(*repuestosTranscoder) error

// WithTable sets the schema and table the statements insert into
func WithTable(schema, table string) Option {
	return func(t *repuestosTranscoder) error {
		schema = strings.TrimSpace(schema)
		table = strings.TrimSpace(table)
		if schema == "" {
			return errSchemaNotSpecified
		}
		if table == "" {
			return errTableNotSpecified
		}
		t.schema = schema
		t.table = table
		return nil
	}
}

// WithDecimals parses numeric fields as exact decimals
func WithDecimals() Option {
	return func(t *repuestosTranscoder) error {
		t.safe = numeric.SafeDecimal
		return nil
	}
}

// WithFloats parses numeric fields as float64 (default)
func WithFloats() Option {
	return func(t *repuestosTranscoder) error {
		t.safe = numeric.SafeFloat
		return nil
	}
}

// WithDecimalComma accepts ',' as the decimal separator in numeric fields
func WithDecimalComma() Option {
	return func(t *repuestosTranscoder) error {
		t.parseOpts = append(t.parseOpts, numeric.WithDecimalComma())
		return nil
	}
}
