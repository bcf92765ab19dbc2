package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keySessionPresets       = "session.presets"
	keySessionDefault       = "session.default"
	keySessionIntent        = "session.intent"
	keySoundEnabled         = "sound.enabled"
	keySoundStartFrequency  = "sound.start_frequency"
	keySoundEndFrequency    = "sound.end_frequency"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyLogLevel             = "settings.log_level"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// config file is created with default values if it does not exist.
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

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keySessionPresets, []string{"5m", "10m", "15m", "20m", "30m"})
	v.SetDefault(keySessionDefault, "5m")
	v.SetDefault(keySessionIntent, "")
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keySoundStartFrequency, 660)
	v.SetDefault(keySoundEndFrequency, 520)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDarkTheme, true)

	if !c.prompted {
		return
	}

	v.Set(keySessionDefault, c.Session.Default.String())
	v.Set(keySoundEnabled, c.Sound.Enabled)
	v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// parseDuration parses a duration string, treating a bare number as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, errInvalidCLIDuration.Fmt(s)
	}

	return mins, nil
}
