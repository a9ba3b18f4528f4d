// Package config loads calcpad settings.
//
// Settings are layered: built-in defaults, then the TOML file, then CALCPAD_*
// environment variables. Command-line flags are applied last by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/calcpad/internal/docfile"
)

const (
	PlacementMessage = "message"
	PlacementInline  = "inline"
)

var (
	// ErrInvalidValue indicates a setting holds a value outside its domain.
	ErrInvalidValue = errors.New("invalid value")
)

type LogConfig struct {
	// File receives log output. Empty disables logging.
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Config struct {
	File            string    `toml:"file"`
	CommentPrefix   string    `toml:"comment_prefix"`
	StripComments   bool      `toml:"strip_comments"`
	Placement       string    `toml:"placement"`
	ShowLineNumbers bool      `toml:"show_line_numbers"`
	Log             LogConfig `toml:"log"`
}

func Default() Config {
	return Config{
		File:            docfile.DefaultName,
		CommentPrefix:   "#",
		StripComments:   true,
		Placement:       PlacementMessage,
		ShowLineNumbers: true,
		Log:             LogConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/calcpad/config.toml or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calcpad", "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return pe
	}
	return nil
}

// ApplyEnv overrides settings from CALCPAD_* variables found via lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"CALCPAD_FILE":           &c.File,
		"CALCPAD_COMMENT_PREFIX": &c.CommentPrefix,
		"CALCPAD_PLACEMENT":      &c.Placement,
		"CALCPAD_LOG_FILE":       &c.Log.File,
		"CALCPAD_LOG_LEVEL":      &c.Log.Level,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	flags := map[string]*bool{
		"CALCPAD_STRIP_COMMENTS":    &c.StripComments,
		"CALCPAD_SHOW_LINE_NUMBERS": &c.ShowLineNumbers,
	}
	for name, dst := range flags {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", name, v, ErrInvalidValue)
		}
		*dst = b
	}
	return nil
}

// Validate checks every setting with a restricted domain.
func (c Config) Validate() error {
	if c.CommentPrefix == "" {
		return fmt.Errorf("comment_prefix must not be empty: %w", ErrInvalidValue)
	}
	switch c.Placement {
	case PlacementMessage, PlacementInline:
	default:
		return fmt.Errorf("placement %q (must be message or inline): %w", c.Placement, ErrInvalidValue)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q (must be debug, info, warn, or error): %w", c.Log.Level, ErrInvalidValue)
	}
	return nil
}
