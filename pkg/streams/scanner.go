package streams

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

type scanState int

const (
	startRecord scanState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// recordScanner splits decoded text into records. Quoting is lenient: a quote
// only opens a quoted field at the start of a field, "" inside quotes is a
// literal quote, and a closing quote followed by other text turns the rest of
// the field into plain text, so the next newline still ends the record.
// Empty lines yield no record.
type recordScanner struct {
	r     *bufio.Reader
	comma rune
	line  int
}

func newRecordScanner(src io.Reader, comma rune) *recordScanner {
	return &recordScanner{r: bufio.NewReader(src), comma: comma}
}

// eatLF consumes the '\n' of a "\r\n" pair.
func (s *recordScanner) eatLF() {
	r, _, err := s.r.ReadRune()
	if err == nil && r != '\n' {
		_ = s.r.UnreadRune()
	}
}

// Read returns the next record, or io.EOF when the input is exhausted.
func (s *recordScanner) Read() ([]string, error) {
	var (
		record []string
		field  strings.Builder
		state  = startRecord
	)
	saveField := func() {
		record = append(record, field.String())
		field.Reset()
	}

	for {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			switch state {
			case startRecord:
				return nil, io.EOF
			case inQuotedField:
				slog.Warn("Unterminated quoted field at end of input", slog.Int("line", s.line+1))
			}
			saveField()
			s.line++
			return record, nil
		}
		if err != nil {
			return nil, err
		}

		endOfLine := r == '\n' || r == '\r'
		switch state {
		case startRecord:
			if endOfLine {
				if r == '\r' {
					s.eatLF()
				}
				s.line++
				continue
			}
			state = startField
			fallthrough
		case startField:
			switch {
			case endOfLine:
				saveField()
			case r == '"':
				state = inQuotedField
				continue
			case r == s.comma:
				saveField()
				continue
			default:
				field.WriteRune(r)
				state = inField
				continue
			}
		case inField:
			switch {
			case endOfLine:
				saveField()
			case r == s.comma:
				saveField()
				state = startField
				continue
			default:
				field.WriteRune(r)
				continue
			}
		case inQuotedField:
			if r == '"' {
				state = quoteInQuotedField
			} else {
				if r == '\n' {
					s.line++
				}
				field.WriteRune(r)
			}
			continue
		case quoteInQuotedField:
			switch {
			case r == '"':
				field.WriteRune('"')
				state = inQuotedField
				continue
			case endOfLine:
				saveField()
			case r == s.comma:
				saveField()
				state = startField
				continue
			default:
				field.WriteRune(r)
				state = inField
				continue
			}
		}

		// end of record
		if r == '\r' {
			s.eatLF()
		}
		s.line++
		return record, nil
	}
}
