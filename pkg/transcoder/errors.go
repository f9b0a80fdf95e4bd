package transcoder

import "errors"

var (
	errSchemaNotSpecified = errors.New("target schema not specified")
	errTableNotSpecified  = errors.New("target table not specified")
)
