package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyEditor        = "editor"
	keyLogbookPath   = "logbook.path"
	keyLogLevel      = "log.level"
	keyLogMaxSizeMB  = "log.max_size_mb"
	keyLogMaxBackups = "log.max_backups"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values chosen in the
// first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyEditor, "")
	v.SetDefault(keyLogbookPath, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSizeMB, 5)
	v.SetDefault(keyLogMaxBackups, 3)

	if c.Editor != "" {
		v.Set(keyEditor, c.Editor)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
