package config

import (
	"github.com/spf13/pflag"
)

// Flags binds command-line flags. Values given on the command line override
// both the defaults and the config file.
type Flags struct {
	fs     *pflag.FlagSet
	values Config

	ConfigPath string
	LogPath    string
	Verbose    bool
}

// NewFlags defines the command-line flags on a new flag set.
func NewFlags(name string) *Flags {
	def := Default()
	f := &Flags{fs: pflag.NewFlagSet(name, pflag.ContinueOnError)}

	f.fs.StringVarP(&f.values.Input, "input", "i", def.Input, "path to the semicolon-delimited CSV export")
	f.fs.StringVarP(&f.values.Output, "output", "o", def.Output, "path of the generated SQL script, overwritten if it exists")
	f.fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to a YAML config file")
	f.fs.StringVarP(&f.values.Delimiter, "delimiter", "d", def.Delimiter, `field delimiter, "\t" for tab`)
	f.fs.StringVarP(&f.values.Encoding, "encoding", "e", def.Encoding, "character encoding of the CSV export (utf-8, windows-1252, ...)")
	f.fs.StringVar(&f.values.Schema, "schema", def.Schema, "schema of the target table")
	f.fs.StringVar(&f.values.Table, "table", def.Table, "name of the target table")
	f.fs.StringVar(&f.values.Numeric, "numeric", def.Numeric, "numeric parsing mode: float or decimal")
	f.fs.BoolVar(&f.values.DecimalComma, "decimal-comma", def.DecimalComma, "accept ',' as the decimal separator")
	f.fs.StringVarP(&f.LogPath, "log", "l", "", "path to log file. Default is stderr")
	f.fs.BoolVarP(&f.Verbose, "verbose", "v", false, "enable verbose (debug) logging")
	return f
}

// Parse parses args, which should not include the program name.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Resolve merges defaults, the config file and explicitly set flags, then
// validates the result.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.ConfigPath != "" {
		loaded, err := Load(f.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	overrides := map[string]func(){
		"input":         func() { cfg.Input = f.values.Input },
		"output":        func() { cfg.Output = f.values.Output },
		"delimiter":     func() { cfg.Delimiter = f.values.Delimiter },
		"encoding":      func() { cfg.Encoding = f.values.Encoding },
		"schema":        func() { cfg.Schema = f.values.Schema },
		"table":         func() { cfg.Table = f.values.Table },
		"numeric":       func() { cfg.Numeric = f.values.Numeric },
		"decimal-comma": func() { cfg.DecimalComma = f.values.DecimalComma },
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply()
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
