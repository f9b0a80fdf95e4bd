package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"repuestosql/pkg/config"
	"repuestosql/pkg/convert"
	"repuestosql/pkg/sqlwriter"
	"repuestosql/pkg/streams"
	"repuestosql/pkg/transcoder"
)

var logCfg slog.HandlerOptions = slog.HandlerOptions{
	Level: slog.LevelError,
}

var errLineMismatch = errors.New("output line count does not match statements written")

// checkWritten compares the statements the run reports against the lines the
// writer actually emitted.
func checkWritten(stats convert.Stats, lines int) error {
	if stats.Written != lines {
		return fmt.Errorf("%w: %d statements, %d lines", errLineMismatch, stats.Written, lines)
	}
	return nil
}

func open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %q: %w", path, err)
	}
	return file, nil
}

// run converts cfg.Input into cfg.Output and returns the run statistics.
// The output file is created before the header is read, so a failed run can
// leave a partial script behind.
func run(ctx context.Context, cfg config.Config) (convert.Stats, error) {
	source, err := open(cfg.Input)
	if err != nil {
		return convert.Stats{}, err
	}
	defer source.Close()

	out, err := sqlwriter.Create(cfg.Output)
	if err != nil {
		return convert.Stats{}, err
	}

	streamOpts, err := cfg.StreamOptions()
	if err != nil {
		out.Close()
		return convert.Stats{}, err
	}
	csvStream, err := streams.NewCsvStream(source, streamOpts...)
	if err != nil {
		out.Close()
		return convert.Stats{}, fmt.Errorf("failed to create CSV stream: %w", err)
	}

	tc, err := transcoder.NewRepuestosTranscoder(cfg.TranscoderOptions()...)
	if err != nil {
		out.Close()
		return convert.Stats{}, fmt.Errorf("failed to create transcoder: %w", err)
	}

	stats, err := convert.Run(ctx, csvStream, tc, out)
	if err == nil {
		err = checkWritten(stats, out.Lines())
	}
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close output file %q: %w", cfg.Output, cerr)
	}
	return stats, err
}

func main() {
	flags := config.NewFlags(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	if flags.Verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stderr
	if flags.LogPath != "" {
		f, err := os.OpenFile(flags.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", flags.LogPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	cfg, err := flags.Resolve()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := run(ctx, cfg)
	if err != nil {
		slog.Error("Conversion failed", "error", err, "stats", stats)
		stop()
		os.Exit(1)
	}
	slog.Debug("Conversion finished", "stats", stats)

	lines, err := sqlwriter.CountLines(cfg.Output)
	if err != nil {
		slog.Error("Error counting output lines", "error", err)
		stop()
		os.Exit(1)
	}
	fmt.Printf("Script SQL generado en %s con %d líneas.\n", cfg.Output, lines)
}
