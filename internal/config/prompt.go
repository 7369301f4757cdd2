package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ___ _ _      _   _   _
| __| (_)__ _| |_| |_| |___  __ _
| _|| | / _` + "`" + ` | ' \  _| / _ \/ _` + "`" + ` |
|_| |_|_\__, |_||_\__|_\___/\__, |
        |___/               |___/`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Editor string
}

// Interactive reports whether the first-run prompt may be shown.
var Interactive = func() bool {
	fd := os.Stdin.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// prompter asks the user for their preferences.
var prompter = promptUser

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only runs when the config file does not exist yet
// and standard input is a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return nil
		}

		if !Interactive() {
			return nil
		}

		opts, err := prompter()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Choose the editor used to write flight notes.
Pass --notes to skip the editor for a single flight.
Edit the config file with 'flightlog --edit-config' to change it later.`, " ").
		Render()

	env := firstNonEmptyString(os.Getenv("VISUAL"), os.Getenv("EDITOR"))

	options := []huh.Option[string]{
		huh.NewOption("Use $VISUAL or $EDITOR", "").Selected(true),
		huh.NewOption("Helix", "hx"),
		huh.NewOption("Neovim", "nvim"),
		huh.NewOption("Vim", "vim"),
		huh.NewOption("Nano", "nano"),
		huh.NewOption("Emacs", "emacs"),
		huh.NewOption("Visual Studio Code", "code --wait"),
	}

	if env != "" {
		options[0] = huh.NewOption("Use $VISUAL or $EDITOR ("+env+")", "").
			Selected(true)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Notes editor").
				Options(options...).
				Value(&opts.Editor),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Editor = opts.Editor

	return nil
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}
