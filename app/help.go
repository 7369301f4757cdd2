package app

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/flightlog/internal/ui"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		ui.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		ui.Yellow("USAGE"),
	)

	args := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		ui.Yellow("ARGUMENTS"),
		argsHelp(),
	)

	author := fmt.Sprintf(
		"{{if len .Authors}}%s\n\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n",
		ui.Yellow("AUTHOR"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		ui.Yellow("VERSION"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		ui.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		ui.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/flightlog\n",
		ui.Yellow("WEBSITE"),
	)

	return description + usage + args + author + version + options + env + website
}

func argsHelp() string {
	return `
ORIGIN: where the flight departed from.

WAYPOINT: one or more stops in order. The last one is the destination.

ELAPSED: flight time in minutes ("123") or hours+minutes ("2+03").

Options must come before ORIGIN: flightlog -n "smooth" JFK LAX 2+30`
}

func envHelp() string {
	return `
VISUAL, EDITOR: editor used for notes when none is configured.

FLIGHTLOG_ENV: use a separate config, logbook and log file (e.g. "dev").

FLIGHTLOG_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.`
}
