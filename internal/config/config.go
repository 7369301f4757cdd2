// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/flightlog/internal/notes"
	"github.com/ayoisaiah/flightlog/internal/timeutil"
)

type (
	// Config holds all configuration settings
	Config struct {
		Editor  string        `mapstructure:"editor"`
		Logbook LogbookConfig `mapstructure:"logbook"`
		Log     LogConfig     `mapstructure:"log"`
		CLI     CLIConfig     `mapstructure:"-"`
	}

	// LogbookConfig holds settings for the flight logbook
	LogbookConfig struct {
		// Path overrides the default logbook location when set
		Path string `mapstructure:"path"`
	}

	// LogConfig holds settings for the diagnostic log
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSizeMB  int    `mapstructure:"max_size_mb"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// CLIConfig holds the flight described on the command line
	CLIConfig struct {
		Created   time.Time
		Notes     *string
		Origin    string
		Editor    string
		Waypoints []string
		Elapsed   timeutil.ElapsedTime
		JSON      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order. Option errors are
// returned unchanged so their kind survives to the caller.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EditorCommand returns the editor to launch for notes: the --editor flag,
// then the config file, then $VISUAL and $EDITOR.
func (c *Config) EditorCommand() string {
	return notes.ResolveEditor(c.CLI.Editor, c.Editor)
}

// LogbookPath returns the configured logbook location, or fallback when
// none is set.
func (c *Config) LogbookPath(fallback string) string {
	if c.Logbook.Path != "" {
		return c.Logbook.Path
	}

	return fallback
}
