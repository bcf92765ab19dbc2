package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Duration      string
	Intent        string
	Tags          string
	SessionCmd    string
	NoSound       bool
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Duration:      ctx.String("duration"),
			Intent:        ctx.String("intent"),
			Tags:          ctx.String("tag"),
			SessionCmd:    ctx.String("session-cmd"),
			NoSound:       ctx.Bool("no-sound"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		dur, err := parseDuration(opts.Duration)
		if err != nil {
			return err
		}

		c.Session.Default = dur
	}

	if opts.Intent != "" {
		c.Session.Intent = opts.Intent
	}

	if opts.Tags != "" {
		c.CLI.Tags = splitAndTrimTags(opts.Tags)
	}

	if opts.NoSound {
		c.Sound.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.CLI.NoColor = opts.NoColor

	return nil
}

// splitAndTrimTags splits a comma-separated tag string and trims whitespace.
func splitAndTrimTags(tags string) []string {
	split := strings.Split(tags, ",")

	trimmed := make([]string, 0, len(split))

	for _, tag := range split {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			trimmed = append(trimmed, tag)
		}
	}

	return trimmed
}
