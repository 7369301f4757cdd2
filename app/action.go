package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/flightlog/internal/config"
	"github.com/ayoisaiah/flightlog/internal/flight"
	"github.com/ayoisaiah/flightlog/internal/logging"
	"github.com/ayoisaiah/flightlog/internal/models"
	"github.com/ayoisaiah/flightlog/internal/notes"
	"github.com/ayoisaiah/flightlog/internal/pathutil"
	"github.com/ayoisaiah/flightlog/internal/timeutil"
	"github.com/ayoisaiah/flightlog/report"
	"github.com/ayoisaiah/flightlog/store"
)

const (
	envNoColor          = "NO_COLOR"
	envFlightlogNoColor = "FLIGHTLOG_NO_COLOR"
)

// flightRecorder turns the parsed command line into a logbook entry.
type flightRecorder struct {
	notes   *notes.Acquirer
	builder *flight.Builder
	store   store.Appender
}

// record acquires notes, builds the record and appends it. Nothing is
// written to the logbook if any step before the append fails.
func (r *flightRecorder) record(
	ctx context.Context,
	in config.CLIConfig,
) (*models.Record, error) {
	logger := logging.FromContext(ctx)

	text, err := r.notes.Acquire(ctx, in.Notes)
	if err != nil {
		return nil, err
	}

	builder := r.builder

	if !in.Created.IsZero() {
		b := *r.builder
		b.Now = func() time.Time { return in.Created }
		builder = &b
	}

	rec, err := builder.Build(flight.Input{
		Origin:    in.Origin,
		Waypoints: in.Waypoints,
		Elapsed:   in.Elapsed,
		Notes:     text,
	})
	if err != nil {
		return nil, err
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.DebugContext(ctx, "built flight record", "record", spew.Sdump(rec))
	}

	if err := r.store.Append(rec); err != nil {
		return nil, err
	}

	logger.InfoContext(
		ctx,
		"flight logged",
		"id", rec.ID.String(),
		"created", timeutil.Stamp(rec.Created),
		"path", r.store.Path(),
		"origin", rec.Origin(),
		"destination", rec.Destination(),
		"waypoints", len(rec.Waypoints),
		"duration", rec.Duration().String(),
	)

	return rec, nil
}

// withLogger attaches the diagnostic logger described by cfg to ctx.
func withLogger(
	ctx context.Context,
	cfg *config.Config,
) (context.Context, io.Closer) {
	logger, closer := logging.New(logging.Options{
		Path:       pathutil.LogFilePath(),
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	return logging.WithLogger(ctx, logger), closer
}

// defaultAction logs the flight described by the command-line arguments.
func defaultAction(ctx *cli.Context) error {
	if ctx.Bool("print-path") {
		return pathAction(ctx)
	}

	if ctx.Bool("edit-config") {
		return editConfigAction(ctx)
	}

	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	c, closer := withLogger(ctx.Context, cfg)
	defer closer.Close()

	editor := &notes.ExecEditor{
		Command: cfg.EditorCommand(),
		Stdin:   config.Stdin,
		Stdout:  config.Stdout,
		Stderr:  config.Stderr,
	}

	r := &flightRecorder{
		notes:   notes.New(editor),
		builder: flight.NewBuilder(),
		store:   store.NewLogbook(cfg.LogbookPath(pathutil.LogbookFilePath())),
	}

	rec, err := r.record(c, cfg.CLI)
	if err != nil {
		logging.FromContext(c).ErrorContext(c, "flight not logged", "error", err)
		return err
	}

	if cfg.CLI.JSON {
		return report.FlightJSON(config.Stdout, rec)
	}

	return report.FlightLogged(config.Stdout, rec, cfg.CLI.Elapsed)
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(ctx *cli.Context) error {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(config.WithViperConfig(configPath))
	if err != nil {
		return err
	}

	cfg.CLI.Editor = ctx.String("editor")

	code, err := notes.NewExecEditor(cfg.EditorCommand()).
		Launch(ctx.Context, configPath)
	if err != nil {
		return err
	}

	if code != 0 {
		pterm.Warning.Printfln("editor exited with status %d", code)
	}

	return nil
}

// pathAction prints where flights and settings are stored.
func pathAction(_ *cli.Context) error {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(config.WithViperConfig(configPath))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		config.Stdout,
		"logbook: %s\nconfig:  %s\nlog:     %s\n",
		cfg.LogbookPath(pathutil.LogbookFilePath()),
		configPath,
		pathutil.LogFilePath(),
	)

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	pterm.Error = *pterm.Error.WithWriter(config.Stderr)
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FLIGHTLOG_NO_COLOR is set
	if _, exists := os.LookupEnv(envFlightlogNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
