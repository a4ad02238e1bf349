package utils

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseArgsDefaults(t *testing.T) {
	config, err := ParseArgs("gol", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("ParseArgs(nil) = %+v, want defaults", config)
	}
}

func TestParseArgsFlags(t *testing.T) {
	config, err := ParseArgs("gol", []string{
		"-r", "5", "-cols", "7", "-delay", "100ms", "-boundary", "dead",
		"-workers", "4", "-seed", "9", "-max-generations", "3", "-alive", "#", "-clear", "-v",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	want := DefaultConfig()
	want.Rows, want.Cols = 5, 7
	want.Delay = Duration(100 * time.Millisecond)
	want.Boundary = "dead"
	want.Workers = 4
	want.Seed = 9
	want.MaxGenerations = 3
	want.AliveGlyph = "#"
	want.ClearScreen = true
	want.Verbose = true
	if config != want {
		t.Errorf("ParseArgs = %+v, want %+v", config, want)
	}
}

func TestParseArgsFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `{"rows": 8, "cols": 9, "boundary": "dead"}`)

	config, err := ParseArgs("gol", []string{"-config", path, "-c", "12"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if config.Rows != 8 || config.Boundary != "dead" {
		t.Errorf("file values lost: %+v", config)
	}
	if config.Cols != 12 {
		t.Errorf("Cols = %d, want flag value 12", config.Cols)
	}
}

func TestParseArgsErrors(t *testing.T) {
	if _, err := ParseArgs("gol", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
	if _, err := ParseArgs("gol", []string{"-rows", "many"}, io.Discard); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad int error = %v, want ErrInvalidConfig", err)
	}
	if _, err := ParseArgs("gol", []string{"-config", "/does/not/exist.json"}, io.Discard); err == nil {
		t.Error("missing config file accepted")
	}
}
