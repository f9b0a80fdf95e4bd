// Package transcoder builds INSERT statements for the repuestos table from
// inventory export records.
package transcoder

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	attr "repuestosql/pkg/api/attribute"
	api "repuestosql/pkg/api/transcoder"
	"repuestosql/pkg/numeric"
	"repuestosql/pkg/sqlvalue"
)

const (
	DefaultSchema = "public"
	DefaultTable  = "repuestos"
)

var _ api.RowTranscoder = (*repuestosTranscoder)(nil)

type repuestosTranscoder struct {
	schema    string
	table     string
	safe      func(string, ...numeric.ParseOption) (attr.NumericAttribute, error)
	parseOpts []numeric.ParseOption
	prefix    string
}

// NewRepuestosTranscoder creates a transcoder for the repuestos column layout.
func NewRepuestosTranscoder(opts ...Option) (api.RowTranscoder, error) {
	t := &repuestosTranscoder{
		schema: DefaultSchema,
		table:  DefaultTable,
		safe:   numeric.SafeFloat,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.prefix = insertPrefix(t.schema, t.table, repuestosColumns)

	mode, _ := t.safe("")
	slog.Debug("Transcoder ready",
		slog.String("schema", t.schema),
		slog.String("table", t.table),
		slog.String("numeric", mode.GetNumericType().String()),
		slog.Bool("decimalComma", len(t.parseOpts) > 0))
	return t, nil
}

// insertPrefix renders everything up to and including "VALUES (".
func insertPrefix(schema, table string, columns []column) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(sqlvalue.QuoteIdentifier(schema))
	b.WriteByte('.')
	b.WriteString(sqlvalue.QuoteIdentifier(table))
	b.WriteString(" (")
	for i, c := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sqlvalue.QuoteIdentifier(c.name))
	}
	b.WriteString(") VALUES (")
	return b.String()
}

// Transcode implements transcoder.RowTranscoder.
func (t *repuestosTranscoder) Transcode(ctx context.Context, record []string) (string, bool) {
	if len(record) < MinFields {
		slog.DebugContext(ctx, "Skipping short record", slog.Int("fields", len(record)), slog.Int("min", MinFields))
		return "", false
	}

	var b strings.Builder
	b.WriteString(t.prefix)
	for i, c := range repuestosColumns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.cell(ctx, record, c).String())
	}
	b.WriteString(");")
	return b.String(), true
}

// cell renders the value of column c taken from record.
func (t *repuestosTranscoder) cell(ctx context.Context, record []string, c column) attr.BaseAttribute {
	switch c.kind {
	case numericCell:
		return t.numeric(ctx, record, c)
	case activeCell:
		return activeFlag{}
	default:
		if c.index >= len(record) {
			return sqlvalue.Absent
		}
		return sqlvalue.ParseText(record[c.index])
	}
}

// numeric renders a numeric column. Missing, empty and unparseable cells all
// come out as zero.
func (t *repuestosTranscoder) numeric(ctx context.Context, record []string, c column) attr.NumericAttribute {
	var raw string
	if c.index < len(record) {
		raw = record[c.index]
	}
	v, err := t.safe(raw, t.parseOpts...)
	if err != nil && !errors.Is(err, numeric.ErrEmpty) {
		slog.DebugContext(ctx, "Numeric field defaulted to zero", slog.String("column", c.name), slog.String("value", raw), slog.Any("error", err))
	}
	return v
}

// activeFlag marks every imported part as active.
type activeFlag struct{}

func (activeFlag) String() string { return sqlvalue.Bool(true) }
