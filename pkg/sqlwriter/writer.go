// Package sqlwriter writes generated statements to the output script.
package sqlwriter

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Writer appends one statement per line to an underlying file or stream.
type Writer struct {
	buf    *bufio.Writer
	closer io.Closer
	lines  int
}

// Create truncates or creates the file at path and returns a Writer over it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// NewWriter returns a Writer over w. Closing it flushes but does not close w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// WriteStatement writes stmt followed by a newline.
func (w *Writer) WriteStatement(stmt string) error {
	if _, err := w.buf.WriteString(stmt); err != nil {
		return err
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	w.lines++
	return nil
}

// Lines returns the number of statements written so far.
func (w *Writer) Lines() int {
	return w.lines
}

// Close flushes buffered output and closes the file opened by Create.
func (w *Writer) Close() error {
	err := w.buf.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
		w.closer = nil
	}
	return err
}
