// Package config provides configuration management for praxis using Viper
// for flexible configuration loading from files, environment variables and
// command-line flags.
//
// Configuration sources, highest priority first: command-line flags,
// PRAXIS_-prefixed environment variables, and a .praxis.yml file in the
// working directory (or the file named by PRAXIS_CONFIG_FILE).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/praxis-cli/praxis/internal/errors"
)

// Config is the root configuration for praxis.
type Config struct {
	Run    RunConfig    `mapstructure:"run" yaml:"run"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Notes  NotesConfig  `mapstructure:"notes" yaml:"notes"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// RunConfig selects what to run when no flags are given.
type RunConfig struct {
	Lesson   string `mapstructure:"lesson" yaml:"lesson"`
	Unit     string `mapstructure:"unit" yaml:"unit"`
	FailFast bool   `mapstructure:"fail_fast" yaml:"fail_fast"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format  string `mapstructure:"format" yaml:"format"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`
}

// NotesConfig locates the lecturer-editable note overlay files.
type NotesConfig struct {
	Dir        string        `mapstructure:"dir" yaml:"dir"`
	DebounceMS int           `mapstructure:"debounce_ms" yaml:"debounce_ms"`
	Debounce   time.Duration `mapstructure:"-" yaml:"-"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SupportedFormats are the report output formats.
var SupportedFormats = []string{"table", "json", "yaml"}

// Load builds the configuration from whatever viper has read, applies
// defaults and validates the result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "unmarshaling configuration").
			WithContext("cause", err.Error())
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "table"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if config.Notes.DebounceMS <= 0 {
		config.Notes.DebounceMS = 300
	}
	config.Notes.Debounce = time.Duration(config.Notes.DebounceMS) * time.Millisecond
}

// Validate checks field values and reports the first violation.
func (c *Config) Validate() error {
	if !isSupportedFormat(c.Output.Format) {
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("unsupported output format %q (supported: %s)",
				c.Output.Format, strings.Join(SupportedFormats, ", ")),
		)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("unsupported log level %q (supported: debug, info, warn, error)", c.Log.Level),
		)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			fmt.Sprintf("unsupported log format %q (supported: text, json)", c.Log.Format),
		)
	}

	if c.Run.Unit != "" && c.Run.Lesson == "" {
		return errors.NewConfigError(
			errors.ErrCodeConfigInvalid,
			"run.unit requires run.lesson",
		)
	}

	return nil
}

func isSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
