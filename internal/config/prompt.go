package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const envSkipPrompt = "testing"

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DefaultMinutes int
	Sound          bool
	Notify         bool
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only runs when the config file does not exist yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(os.Getenv("MEDITATE_ENV")) == envSkipPrompt {
			return nil
		}

		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPromptFailed.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		DefaultMinutes: 5,
		Sound:          true,
		Notify:         true,
	}

	_ = putils.BulletListFromString(`Answer a few questions to set up meditate for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'meditate edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default session length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
				).
				Value(&opts.DefaultMinutes),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Ring a bell when a session starts and ends?").
				Value(&opts.Sound),
			huh.NewConfirm().
				Title("Show a desktop notification when a session ends?").
				Value(&opts.Notify),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	pterm.Println()

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Session.Default = time.Duration(opts.DefaultMinutes) * time.Minute
	c.Sound.Enabled = opts.Sound
	c.Notifications.Enabled = opts.Notify
	c.prompted = true
}
