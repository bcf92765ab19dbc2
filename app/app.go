package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/meditate/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the meditate app instance.
func Get() *cli.App {
	filterFlags := []cli.Flag{sinceFlag, todayFlag, filterTagFlag}

	return &cli.App{
		Name: "meditate",
		Usage: `
		Meditate is a calm countdown timer for the command-line. Pick a session
		length and an intent, check in whenever your attention drifts, and read
		back a short report when the bell rings.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "history",
				Usage:  "List recorded sessions",
				Flags:  append(filterFlags, jsonFlag, yamlFlag),
				Action: historyAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete recorded sessions",
				Flags:  append(filterFlags, yesFlag),
				Action: deleteAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running session",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			durationFlag,
			intentFlag,
			noSoundFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			addTagFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
