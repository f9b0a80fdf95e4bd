package streams

import (
	"context"
	"io"

	iface "repuestosql/pkg/api/streams"

	"golang.org/x/text/encoding/unicode"
)

type csvReader struct {
	reader *recordScanner
	header []string
}

var _ iface.CsvStream = (*csvReader)(nil)

// NewCsvStream creates a new CSV stream from an io.Reader.
// It decodes the source to UTF-8, drops a leading byte order mark and
// reads the header row immediately.
func NewCsvStream(reader io.Reader, opts ...CsvStreamOption) (iface.CsvStream, error) {
	if reader == nil {
		return nil, errNilReader
	}
	cfg := &csvConfig{
		delimiter: DefaultDelimiter,
		encoding:  unicode.UTF8,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	csvR := cfg.newReader(reader)

	// Read header row
	header, err := csvR.Read()
	if err == io.EOF {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, err
	}

	return &csvReader{
		reader: csvR,
		header: header,
	}, nil
}

// ReadCsvRecord implements CsvStream.
func (c *csvReader) ReadCsvRecord(ctx context.Context) ([]string, error) {
	if c == nil || c.reader == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return c.reader.Read()
	}
}

// GetHeader implements CsvStream.
func (c *csvReader) GetHeader() []string {
	if c == nil {
		return nil
	}
	return c.header
}
