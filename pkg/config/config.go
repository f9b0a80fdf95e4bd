// Package config resolves the settings of a conversion run from built-in
// defaults, an optional YAML file and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"repuestosql/pkg/streams"
	"repuestosql/pkg/transcoder"

	"gopkg.in/yaml.v3"
)

const (
	NumericFloat   = "float"
	NumericDecimal = "decimal"
)

var (
	errInputNotSpecified  = errors.New("input path not specified")
	errOutputNotSpecified = errors.New("output path not specified")
	errSamePaths          = errors.New("input and output paths are equal")
	errBadDelimiter       = errors.New("delimiter must be a single character")
	errBadNumericMode     = errors.New("numeric mode must be float or decimal")
)

// Config describes one conversion run.
type Config struct {
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	Delimiter    string `yaml:"delimiter"`
	Encoding     string `yaml:"encoding"`
	Schema       string `yaml:"schema"`
	Table        string `yaml:"table"`
	Numeric      string `yaml:"numeric"`
	DecimalComma bool   `yaml:"decimal_comma"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Input:     "NUEVO SISTEMA22.csv",
		Output:    "inserts_repuestos.sql",
		Delimiter: string(streams.DefaultDelimiter),
		Encoding:  "utf-8",
		Schema:    transcoder.DefaultSchema,
		Table:     transcoder.DefaultTable,
		Numeric:   NumericFloat,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errInputNotSpecified
	}
	if strings.TrimSpace(c.Output) == "" {
		return errOutputNotSpecified
	}
	if c.Input == c.Output {
		return errSamePaths
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	switch strings.ToLower(c.Numeric) {
	case NumericFloat, NumericDecimal:
	default:
		return fmt.Errorf("%w: %q", errBadNumericMode, c.Numeric)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. "\t" is accepted as tab.
func (c Config) DelimiterRune() (rune, error) {
	d := c.Delimiter
	if d == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("%w: %q", errBadDelimiter, d)
	}
	r, _ := utf8.DecodeRuneInString(d)
	return r, nil
}

// StreamOptions returns the CSV stream options for this configuration.
func (c Config) StreamOptions() ([]streams.CsvStreamOption, error) {
	d, err := c.DelimiterRune()
	if err != nil {
		return nil, err
	}
	return []streams.CsvStreamOption{
		streams.WithDelimiter(d),
		streams.WithEncoding(c.Encoding),
	}, nil
}

// TranscoderOptions returns the transcoder options for this configuration.
func (c Config) TranscoderOptions() []transcoder.Option {
	opts := []transcoder.Option{transcoder.WithTable(c.Schema, c.Table)}
	if strings.EqualFold(c.Numeric, NumericDecimal) {
		opts = append(opts, transcoder.WithDecimals())
	} else {
		opts = append(opts, transcoder.WithFloats())
	}
	if c.DecimalComma {
		opts = append(opts, transcoder.WithDecimalComma())
	}
	return opts
}
