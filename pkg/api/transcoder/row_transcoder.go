package transcoder

import "context"

// RowTranscoder turns one CSV record into at most one SQL statement.
type RowTranscoder interface {
	// Transcode returns the statement built from record without a trailing
	// newline. ok is false when the record is skipped; skipping is not an error.
	Transcode(ctx context.Context, record []string) (statement string, ok bool)
}
