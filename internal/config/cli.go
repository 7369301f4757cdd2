package config

import (
	"time"
	"unicode"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/flightlog/internal/timeutil"
)

// minArgs is the origin, one waypoint and the elapsed time.
const minArgs = 3

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Notes  *string
	Date   string
	Editor string
	Args   []string
	JSON   bool
}

// Now is the clock used to resolve relative dates.
var Now = time.Now

// WithCLIConfig returns an Option that loads configuration from CLI flags
// and positional arguments.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Args:   ctx.Args().Slice(),
			Date:   ctx.String("date"),
			Editor: ctx.String("editor"),
			JSON:   ctx.Bool("json"),
		}

		// --notes "" is an explicit request for no notes, which is
		// different from leaving the flag out.
		if ctx.IsSet("notes") {
			n := ctx.String("notes")
			opts.Notes = &n
		}

		return applyCLIOptions(c, opts)
	}
}

// looksLikeOption reports whether arg reads as a flag rather than flight
// data. Negative elapsed times such as "-90" are data.
func looksLikeOption(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	return !unicode.IsDigit(rune(arg[1]))
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	// Flag parsing stops at the first positional argument, so anything
	// after it that looks like an option was not applied.
	for _, arg := range opts.Args {
		if looksLikeOption(arg) {
			return errMisplacedOption.Fmt(arg)
		}
	}

	if len(opts.Args) < minArgs {
		return errTooFewArgs.Fmt(len(opts.Args))
	}

	last := len(opts.Args) - 1

	elapsed, err := timeutil.ParseElapsed(opts.Args[last])
	if err != nil {
		return err
	}

	c.CLI.Origin = opts.Args[0]
	c.CLI.Waypoints = opts.Args[1:last]
	c.CLI.Elapsed = elapsed
	c.CLI.Notes = opts.Notes
	c.CLI.Editor = opts.Editor
	c.CLI.JSON = opts.JSON

	if opts.Date != "" {
		created, err := timeutil.ParseDate(opts.Date, Now())
		if err != nil {
			return err
		}

		c.CLI.Created = created
	}

	return nil
}
