package notes

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/flightlog/internal/apperr"
	"github.com/ayoisaiah/flightlog/internal/osutil"
)

// DefaultEditor is used when no editor is configured and neither $VISUAL
// nor $EDITOR is set.
const DefaultEditor = "hx"

var (
	errEditorCommand = &apperr.Error{
		Kind:    apperr.EditorIO,
		Message: "invalid editor command %q",
	}

	errEditorLaunch = &apperr.Error{
		Kind:    apperr.EditorIO,
		Message: "unable to run editor %q",
	}
)

// Editor opens a file for interactive editing and blocks until the user is
// done with it.
type Editor interface {
	// Launch returns the exit status of the editor. A non-nil error means
	// the editor could not be started or waited on.
	Launch(ctx context.Context, path string) (int, error)
}

// ExecEditor runs an external editor program attached to the terminal.
type ExecEditor struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Command string
}

// NewExecEditor returns an ExecEditor for command attached to the process's
// standard streams.
func NewExecEditor(command string) *ExecEditor {
	return &ExecEditor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Launch runs the editor with path as its final argument. The command may
// carry its own arguments (e.g. "code --wait").
func (e *ExecEditor) Launch(ctx context.Context, path string) (int, error) {
	args, err := e.args()
	if err != nil {
		return 0, err
	}

	args = append(args, path)

	//nolint:gosec // the editor is chosen by the user
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err = cmd.Run()
	if err == nil {
		return 0, nil
	}

	// The editor ran and exited unsuccessfully, possibly by signal (-1).
	// Only cancellation of ctx turns that into a failure.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return exitErr.ExitCode(), nil
	}

	return 0, errEditorLaunch.Fmt(e.Command).Wrap(err)
}

// args splits the editor command into program and arguments. A command
// naming an existing file is used as-is so Windows paths survive.
func (e *ExecEditor) args() ([]string, error) {
	if _, err := os.Stat(e.Command); err == nil {
		return []string{e.Command}, nil
	}

	args, err := shellquote.Split(e.Command)
	if err != nil {
		return nil, errEditorCommand.Fmt(e.Command).Wrap(err)
	}

	if len(args) == 0 {
		return nil, errEditorCommand.Fmt(e.Command)
	}

	return args, nil
}

// ResolveEditor returns the first non-empty editor command from the
// candidates, $VISUAL and $EDITOR, falling back to a platform default.
func ResolveEditor(candidates ...string) string {
	fallback := DefaultEditor
	if runtime.GOOS == osutil.Windows {
		fallback = "C:\\Windows\\system32\\notepad.exe"
	}

	candidates = append(
		candidates,
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		fallback,
	)

	for _, c := range candidates {
		if c != "" {
			return c
		}
	}

	return fallback
}
