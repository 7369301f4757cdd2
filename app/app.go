package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/flightlog/internal/config"
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

// Get retrieves the flightlog app instance. It has no subcommands: every
// positional argument is flight data, so an origin may be any word.
func Get() *cli.App {
	return &cli.App{
		Name: "flightlog",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Flightlog records flights from the command-line. Each flight is
		appended as one JSON line to a logbook in your data directory.`,
		UsageText:       "[OPTIONS] ORIGIN WAYPOINT... ELAPSED",
		ArgsUsage:       "ORIGIN WAYPOINT... ELAPSED",
		Version:         config.Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			notesFlag,
			editorFlag,
			dateFlag,
			jsonFlag,
			noColorFlag,
			printPathFlag,
			editConfigFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
