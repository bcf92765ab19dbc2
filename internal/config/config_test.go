package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/meditate/internal/config"
)

func TestMain(m *testing.M) {
	os.Setenv("MEDITATE_ENV", "testing")

	os.Exit(m.Run())
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			Presets: []time.Duration{
				5 * time.Minute,
				10 * time.Minute,
				15 * time.Minute,
				20 * time.Minute,
				30 * time.Minute,
			},
			Default: 5 * time.Minute,
		},
		Sound: config.SoundConfig{
			Enabled:        true,
			StartFrequency: 660,
			EndFrequency:   520,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Settings: config.SettingsConfig{
			LogLevel: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written file must load back to the same values
	reloaded, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, reloaded)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	modified := `session:
  presets: ["3m", "7m", "90s", "45m"]
  default: 7m
  intent: Soft belly
sound:
  enabled: false
  start_frequency: 440
notifications:
  enabled: false
settings:
  24hr_clock: true
  log_level: debug
  cmd: notify-send done
`

	err := os.WriteFile(configPath, []byte(modified), 0o600)
	require.NoError(t, err)

	want := defaultConfig()
	want.Session = config.SessionConfig{
		Presets: []time.Duration{
			3 * time.Minute,
			7 * time.Minute,
			90 * time.Second,
			45 * time.Minute,
		},
		Default: 7 * time.Minute,
		Intent:  "Soft belly",
	}
	want.Sound = config.SoundConfig{
		Enabled:        false,
		StartFrequency: 440,
		EndFrequency:   520,
	}
	want.Notifications.Enabled = false
	want.Settings = config.SettingsConfig{
		Cmd:            "notify-send done",
		LogLevel:       "debug",
		TwentyFourHour: true,
	}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
	assert.Equal(t, []int{180, 420, 90, 2700}, cfg.PresetSeconds())
	assert.Equal(t, 420, cfg.DefaultSeconds())
	assert.Equal(t, "15:04:05", cfg.ClockFormat())
}

func TestViperReadMalformedConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("session: [unclosed"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(c *config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(*config.Config) {},
		},
		{
			name: "no presets",
			modify: func(c *config.Config) {
				c.Session.Presets = nil
			},
			wantErr: "at least one session preset must be configured",
		},
		{
			name: "preset too long",
			modify: func(c *config.Config) {
				c.Session.Presets = append(c.Session.Presets, 13*time.Hour)
			},
			wantErr: "preset 13h0m0s must be between 1s and 12h0m0s",
		},
		{
			name: "fractional preset",
			modify: func(c *config.Config) {
				c.Session.Presets = append(c.Session.Presets, 1500*time.Millisecond)
			},
			wantErr: "preset 1.5s must be a whole number of seconds",
		},
		{
			name: "duplicate preset",
			modify: func(c *config.Config) {
				c.Session.Presets = append(c.Session.Presets, 10*time.Minute)
			},
			wantErr: "preset 10m0s is listed more than once",
		},
		{
			name: "default not a preset",
			modify: func(c *config.Config) {
				c.Session.Default = 7 * time.Minute
			},
			wantErr: "duration 7m0s is not one of the configured presets (5 minutes, 10 minutes, 15 minutes, 20 minutes, 30 minutes)",
		},
		{
			name: "inaudible bell",
			modify: func(c *config.Config) {
				c.Sound.EndFrequency = 5
			},
			wantErr: "end frequency must be between 20 and 20000 Hz, got 5",
		},
		{
			name: "unknown log level",
			modify: func(c *config.Config) {
				c.Settings.LogLevel = "verbose"
			},
			wantErr: `unknown log level: "verbose"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tc.wantErr)
		})
	}
}
