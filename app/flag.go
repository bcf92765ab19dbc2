package app

import "github.com/urfave/cli/v2"

var (
	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Session length to select on launch (e.g. 10m). Must be one of the configured presets",
	}

	intentFlag = &cli.StringFlag{
		Name:    "intent",
		Aliases: []string{"i"},
		Usage:   "What to rest your attention on during the session",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not ring the bell when a session starts or ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"n"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}

	addTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Add comma-delimited tags to a session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions that ended after this time (e.g. '7 days ago', '2025-01-02')",
	}

	todayFlag = &cli.BoolFlag{
		Name:  "today",
		Usage: "Only include sessions from today",
	}

	filterTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Only include sessions carrying one of these comma-delimited tags",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the sessions as JSON",
	}

	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Print the sessions as YAML",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Delete without asking for confirmation",
	}
)
