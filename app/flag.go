package app

import "github.com/urfave/cli/v2"

var (
	notesFlag = &cli.StringFlag{
		Name:    "notes",
		Aliases: []string{"n"},
		Usage:   "Notes for the flight. Skips the editor; pass an empty string for no notes",
	}

	editorFlag = &cli.StringFlag{
		Name:    "editor",
		Aliases: []string{"e"},
		Usage:   "Editor command used to write notes (default: $VISUAL, $EDITOR or hx)",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "When the flight took place (e.g. 'yesterday 14:30' or '2024-03-09 08:15'). Defaults to now",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the logged record as JSON instead of a table",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	printPathFlag = &cli.BoolFlag{
		Name:  "print-path",
		Usage: "Print the location of the logbook, config and log files, then exit",
	}

	editConfigFlag = &cli.BoolFlag{
		Name:  "edit-config",
		Usage: "Open the configuration file in your editor, then exit",
	}
)
