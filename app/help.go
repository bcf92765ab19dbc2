package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("KEYS"),
		keysHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + keys + env
}

func keysHelp() string {
	return `enter/s start · space/c check in · r restart · ←/→ or 1-9 choose a preset · tab edit the intent · q quit`
}

func envHelp() string {
	return `
MEDITATE_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

MEDITATE_ENV: keep config, history and logs in separate files suffixed with this value.`
}
