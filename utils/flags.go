package utils

import (
	"flag"
	"io"
	"time"

	"github.com/pkg/errors"
)

// ParseArgs builds the configuration from command line arguments. Values are
// layered: defaults, then the -config file if one is named, then any flags
// given explicitly.
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	probe := DefaultConfig()
	fs, path := newFlagSet(name, &probe)
	fs.SetOutput(output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return probe, err
		}
		return probe, errors.Wrapf(ErrInvalidConfig, "[ParseArgs] %v", err)
	}

	config := DefaultConfig()
	if *path != "" {
		loaded, err := LoadConfig(*path)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	// Second pass over the same arguments, this time defaulting to the file values
	fs, _ = newFlagSet(name, &config)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseArgs] failed to reparse flags")
	}

	return config, nil
}

func newFlagSet(name string, config *Config) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	path := fs.String("config", "", "path to a JSON configuration file")
	fs.IntVar(&config.Rows, "r", config.Rows, "number of rows")
	fs.IntVar(&config.Rows, "rows", config.Rows, "number of rows")
	fs.IntVar(&config.Cols, "c", config.Cols, "number of columns")
	fs.IntVar(&config.Cols, "cols", config.Cols, "number of columns")
	fs.DurationVar((*time.Duration)(&config.Delay), "delay", time.Duration(config.Delay), "pause between generations")
	fs.StringVar(&config.Boundary, "boundary", config.Boundary, "neighbor boundary policy: reference or dead")
	fs.IntVar(&config.Workers, "workers", config.Workers, "goroutines used per generation")
	fs.Int64Var(&config.Seed, "seed", config.Seed, "random seed, 0 picks one from the clock")
	fs.IntVar(&config.MaxGenerations, "max-generations", config.MaxGenerations, "stop after this many generations, 0 runs forever")
	fs.StringVar(&config.AliveGlyph, "alive", config.AliveGlyph, "glyph for a live cell")
	fs.StringVar(&config.DeadGlyph, "dead", config.DeadGlyph, "glyph for a dead cell")
	fs.BoolVar(&config.ClearScreen, "clear", config.ClearScreen, "clear the terminal before each frame")
	fs.BoolVar(&config.Verbose, "v", config.Verbose, "log per-generation stats to stderr")

	return fs, path
}
