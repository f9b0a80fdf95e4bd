package streams

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultDelimiter separates fields in inventory exports.
const DefaultDelimiter = ';'

// CsvStreamOption configures a CSV stream
type CsvStreamOption func(*csvConfig) error

type csvConfig struct {
	delimiter rune
	encoding  encoding.Encoding
}

// WithDelimiter sets the field delimiter
func WithDelimiter(delimiter rune) CsvStreamOption {
	return func(c *csvConfig) error {
		if delimiter == 0 || delimiter == '"' || delimiter == '\r' || delimiter == '\n' ||
			!utf8.ValidRune(delimiter) || delimiter == utf8.RuneError {
			return fmt.Errorf("%w: %q", errInvalidDelimiter, delimiter)
		}
		c.delimiter = delimiter
		return nil
	}
}

// WithEncoding decodes the source from the named character encoding.
// Names are WHATWG labels such as "utf-8", "windows-1252" or "latin1".
func WithEncoding(name string) CsvStreamOption {
	return func(c *csvConfig) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}
		enc, err := htmlindex.Get(name)
		if err != nil {
			return fmt.Errorf("%w %q: %v", errUnknownEncoding, name, err)
		}
		c.encoding = enc
		return nil
	}
}

// newReader decodes src and splits it into records. A UTF-8 source is
// validated rather than repaired, so a malformed byte fails the read with
// encoding.ErrInvalidUTF8.
func (c *csvConfig) newReader(src io.Reader) *recordScanner {
	var t transform.Transformer
	if name, err := htmlindex.Name(c.encoding); err == nil && name == "utf-8" {
		t = transform.Chain(unicode.BOMOverride(transform.Nop), encoding.UTF8Validator)
	} else {
		t = unicode.BOMOverride(c.encoding.NewDecoder())
	}
	return newRecordScanner(transform.NewReader(src, t), c.delimiter)
}
