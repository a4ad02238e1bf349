package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Duration is a time.Duration that reads "250ms" style strings or plain nanoseconds from JSON
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] bad duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] bad duration %s", data)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the configuration for the game
type Config struct {
	Rows           int      `json:"rows"`
	Cols           int      `json:"cols"`
	Delay          Duration `json:"delay"`
	Boundary       string   `json:"boundary"`
	Workers        int      `json:"workers"`
	Seed           int64    `json:"seed"`
	MaxGenerations int      `json:"max_generations"`
	AliveGlyph     string   `json:"alive_glyph"`
	DeadGlyph      string   `json:"dead_glyph"`
	ClearScreen    bool     `json:"clear_screen"`
	Verbose        bool     `json:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           20,
		Cols:           40,
		Delay:          Duration(250 * time.Millisecond),
		Boundary:       "reference",
		Workers:        1,
		MaxGenerations: 0, // run until interrupted
		AliveGlyph:     "@",
		DeadGlyph:      " ",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the game cannot start with
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return errors.Wrapf(ErrInvalidConfig, "rows and cols must be at least 1, got %dx%d", c.Rows, c.Cols)
	case c.Delay < 0:
		return errors.Wrapf(ErrInvalidConfig, "delay must not be negative, got %s", time.Duration(c.Delay))
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations must not be negative, got %d", c.MaxGenerations)
	}

	for name, glyph := range map[string]string{"alive": c.AliveGlyph, "dead": c.DeadGlyph} {
		if !isGlyph(glyph) {
			return errors.Wrapf(ErrInvalidConfig, "%s glyph must be one printable character, got %q", name, glyph)
		}
	}
	return nil
}

func isGlyph(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsPrint(r)
}
