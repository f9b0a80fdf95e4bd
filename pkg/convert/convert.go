// Package convert drives a single sequential pass from CSV records to
// SQL statements.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	apiStreams "repuestosql/pkg/api/streams"
	apiTranscoder "repuestosql/pkg/api/transcoder"
)

var errNilStage = errors.New("stream, transcoder and writer are required")

// StatementWriter receives generated statements in input order.
type StatementWriter interface {
	WriteStatement(stmt string) error
}

// Stats counts what happened to the records of one run.
type Stats struct {
	Read    int
	Written int
	Skipped int
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("read", s.Read),
		slog.Int("written", s.Written),
		slog.Int("skipped", s.Skipped),
	)
}

// Run reads every record from stream, transcodes it and writes the resulting
// statement. The first read or write error stops the run.
func Run(ctx context.Context, stream apiStreams.CsvStream, tc apiTranscoder.RowTranscoder, w StatementWriter) (Stats, error) {
	var stats Stats
	if stream == nil || tc == nil || w == nil {
		return stats, errNilStage
	}

	for {
		record, err := stream.ReadCsvRecord(ctx)
		if err == io.EOF {
			slog.InfoContext(ctx, "End of CSV stream", slog.Any("stats", stats))
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read record %d: %w", stats.Read+1, err)
		}
		stats.Read++

		stmt, ok := tc.Transcode(ctx, record)
		if !ok {
			stats.Skipped++
			continue
		}
		if err := w.WriteStatement(stmt); err != nil {
			return stats, fmt.Errorf("failed to write statement for record %d: %w", stats.Read, err)
		}
		stats.Written++
	}
}
