// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"log/slog"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Session       SessionConfig      `mapstructure:"session"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		CLI           CLIConfig          `mapstructure:"-"`
		prompted      bool
	}

	// SessionConfig holds the duration presets and the initial intent
	SessionConfig struct {
		Intent  string          `mapstructure:"intent"`
		Presets []time.Duration `mapstructure:"presets"`
		Default time.Duration   `mapstructure:"default"`
	}

	// SoundConfig holds the bell settings
	SoundConfig struct {
		StartFrequency float64 `mapstructure:"start_frequency"`
		EndFrequency   float64 `mapstructure:"end_frequency"`
		Enabled        bool    `mapstructure:"enabled"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		LogLevel       string `mapstructure:"log_level"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// CLIConfig holds options that only exist for a single invocation
	CLIConfig struct {
		Tags    []string
		NoColor bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// PresetSeconds returns the configured presets in whole seconds.
func (c *Config) PresetSeconds() []int {
	out := make([]int, len(c.Session.Presets))

	for i, d := range c.Session.Presets {
		out[i] = int(d / time.Second)
	}

	return out
}

// DefaultSeconds returns the initially active preset in whole seconds.
func (c *Config) DefaultSeconds() int {
	return int(c.Session.Default / time.Second)
}

// LogLevel returns the configured slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Settings.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// ClockFormat returns the layout used to display wall-clock times.
func (c *Config) ClockFormat() string {
	if c.Settings.TwentyFourHour {
		return "15:04:05"
	}

	return "03:04:05 PM"
}

func formatPreset(d time.Duration) string {
	if d%time.Minute == 0 {
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	}

	return d.String()
}
