package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.Rows != 20 || config.Cols != 40 || time.Duration(config.Delay) != 250*time.Millisecond {
		t.Errorf("unexpected defaults: %+v", config)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"rows": 8, "delay": "100ms", "boundary": "dead", "alive_glyph": "#"}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Rows != 8 || config.Boundary != "dead" || config.AliveGlyph != "#" {
		t.Errorf("file values not applied: %+v", config)
	}
	if time.Duration(config.Delay) != 100*time.Millisecond {
		t.Errorf("Delay = %s, want 100ms", time.Duration(config.Delay))
	}
	if config.Cols != 40 || config.DeadGlyph != " " {
		t.Errorf("defaults not kept for missing keys: %+v", config)
	}
}

func TestLoadConfigNanosecondDelay(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"delay": 1000000}`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if time.Duration(config.Delay) != time.Millisecond {
		t.Errorf("Delay = %s, want 1ms", time.Duration(config.Delay))
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
		{"bad json", writeConfig(t, `{"rows": `)},
		{"bad delay", writeConfig(t, `{"delay": "soon"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path); err == nil {
				t.Error("LoadConfig succeeded, want error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"zero cols", func(c *Config) { c.Cols = 0 }},
		{"negative delay", func(c *Config) { c.Delay = Duration(-time.Second) }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"empty alive glyph", func(c *Config) { c.AliveGlyph = "" }},
		{"wide dead glyph", func(c *Config) { c.DeadGlyph = "ab" }},
		{"control glyph", func(c *Config) { c.AliveGlyph = "\t" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAcceptsUnicodeGlyph(t *testing.T) {
	config := DefaultConfig()
	config.AliveGlyph = "█"
	config.Rows, config.Cols = 1, 1
	if err := config.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
