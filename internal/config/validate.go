package config

import (
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}

	for _, editor := range []string{c.Editor, c.CLI.Editor} {
		if err := validateEditor(editor); err != nil {
			return err
		}
	}

	return nil
}

// validateLog checks the diagnostic log settings. An empty level means the
// default.
func (c *Config) validateLog() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))

	if level != "" && !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errInvalidLogRotation
	}

	return nil
}

// validateEditor ensures a configured editor command can be split into a
// program and its arguments.
func validateEditor(editor string) error {
	if editor == "" {
		return nil
	}

	if _, err := shellquote.Split(editor); err != nil {
		return errInvalidEditor.Fmt(editor).Wrap(err)
	}

	return nil
}
