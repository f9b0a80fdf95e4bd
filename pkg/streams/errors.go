package streams

import "errors"

var (
	errNilReader        = errors.New("csv source cannot be nil")
	errNoHeader         = errors.New("csv source has no header row")
	errInvalidDelimiter = errors.New("invalid csv delimiter")
	errUnknownEncoding  = errors.New("unknown character encoding")
)
