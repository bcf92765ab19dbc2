package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestWithCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("meditate", flag.ContinueOnError)

	flags := map[string]string{
		"duration":    "10",
		"intent":      "count the breath",
		"tag":         " morning, ,sitting ",
		"session-cmd": "echo done",
	}

	for k, v := range flags {
		_ = f.String(k, "", "")

		require.NoError(t, f.Set(k, v))
	}

	_ = f.Bool("no-sound", false, "")
	require.NoError(t, f.Set("no-sound", "true"))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	cfg := &Config{
		Sound:         SoundConfig{Enabled: true},
		Notifications: NotificationConfig{Enabled: true},
	}

	err := WithCLIConfig(ctx)(cfg)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.Session.Default)
	assert.Equal(t, "count the breath", cfg.Session.Intent)
	assert.Equal(t, []string{"morning", "sitting"}, cfg.CLI.Tags)
	assert.Equal(t, "echo done", cfg.Settings.Cmd)
	assert.False(t, cfg.Sound.Enabled)
	assert.True(t, cfg.Notifications.Enabled)
}

func TestApplyCLIOptionsInvalidDuration(t *testing.T) {
	err := applyCLIOptions(&Config{}, CLIOptions{Duration: "soon"})

	assert.ErrorIs(t, err, errInvalidCLIDuration)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"15", 15 * time.Minute},
		{"90s", 90 * time.Second},
		{"1h", time.Hour},
		{"2.5", 150 * time.Second},
	}

	for _, tt := range tests {
		got, err := parseDuration(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestApplyPromptOptions(t *testing.T) {
	cfg := &Config{}

	applyPromptOptions(cfg, PromptOptions{
		DefaultMinutes: 20,
		Sound:          false,
		Notify:         true,
	})

	assert.Equal(t, 20*time.Minute, cfg.Session.Default)
	assert.False(t, cfg.Sound.Enabled)
	assert.True(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.prompted)
}
