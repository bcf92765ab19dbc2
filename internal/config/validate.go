package config

import (
	"log/slog"
	"slices"
	"strings"
	"time"
)

var (
	// Minimum and maximum duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	// Audible range for the bell.
	minFrequency = 20.0
	maxFrequency = 20000.0
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validatePresets(); err != nil {
		return err
	}

	if err := c.validateSound(); err != nil {
		return err
	}

	return c.validateSettings()
}

func (c *Config) validatePresets() error {
	presets := c.Session.Presets

	if len(presets) == 0 {
		return errNoPresets
	}

	for i, d := range presets {
		if d < minSessionDuration || d > maxSessionDuration {
			return errInvalidDuration.Fmt(d, minSessionDuration, maxSessionDuration)
		}

		if d%time.Second != 0 {
			return errFractionalDuration.Fmt(d)
		}

		if slices.Contains(presets[:i], d) {
			return errDuplicatePreset.Fmt(d)
		}
	}

	if !slices.Contains(presets, c.Session.Default) {
		names := make([]string, len(presets))
		for i, d := range presets {
			names[i] = formatPreset(d)
		}

		return errUnknownPreset.Fmt(c.Session.Default, strings.Join(names, ", "))
	}

	return nil
}

func (c *Config) validateSound() error {
	freqs := []struct {
		name  string
		value float64
	}{
		{"start", c.Sound.StartFrequency},
		{"end", c.Sound.EndFrequency},
	}

	for _, f := range freqs {
		if f.value <= minFrequency || f.value >= maxFrequency {
			return errInvalidFrequency.Fmt(f.name, minFrequency, maxFrequency, f.value)
		}
	}

	return nil
}

func (c *Config) validateSettings() error {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Settings.LogLevel)); err != nil {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return nil
}
