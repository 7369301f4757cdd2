// Package notes obtains the free-text notes attached to a flight, either
// from the command line or through an editor session.
package notes

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/flightlog/internal/apperr"
	"github.com/ayoisaiah/flightlog/internal/logging"
)

// FileName is the name of the scratch file handed to the editor. It is
// shared by every run and is not removed afterwards.
const FileName = "flightlog-notes.txt"

// Template pre-populates the scratch file.
const Template = `
# Enter notes for this flight above. Lines starting with '#' are ignored.
# Save and close the editor to log the flight. Leave it empty for no notes.
`

var (
	errWriteNotes = &apperr.Error{
		Kind:    apperr.EditorIO,
		Message: "unable to prepare notes file %s",
	}

	errReadNotes = &apperr.Error{
		Kind:    apperr.EditorIO,
		Message: "unable to read notes file %s",
	}
)

// Acquirer produces the notes text for a flight record.
type Acquirer struct {
	Editor   Editor
	Path     string
	Template string
}

// New returns an Acquirer that launches editor on a scratch file in the
// system temporary directory.
func New(editor Editor) *Acquirer {
	return &Acquirer{
		Editor:   editor,
		Path:     DefaultPath(),
		Template: Template,
	}
}

// DefaultPath returns the location of the scratch notes file.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), FileName)
}

// Acquire returns inline verbatim when it is non-nil, even if it is empty.
// Otherwise the editor is opened on the template and the comment-stripped
// result is returned once it exits.
func (a *Acquirer) Acquire(ctx context.Context, inline *string) (string, error) {
	if inline != nil {
		return *inline, nil
	}

	logger := logging.FromContext(ctx)

	if err := os.WriteFile(a.Path, []byte(a.Template), 0o600); err != nil {
		return "", errWriteNotes.Fmt(a.Path).Wrap(err)
	}

	logger.DebugContext(ctx, "launching editor", "path", a.Path)

	code, err := a.Editor.Launch(ctx, a.Path)
	if err != nil {
		return "", err
	}

	if code != 0 {
		logger.WarnContext(
			ctx,
			"editor exited with non-zero status",
			"status", code,
		)
	}

	b, err := os.ReadFile(a.Path)
	if err != nil {
		return "", errReadNotes.Fmt(a.Path).Wrap(err)
	}

	return Strip(string(b)), nil
}

// Strip removes every line that starts with '#', joins the remaining lines
// with newlines and drops a single trailing newline.
func Strip(text string) string {
	lines := strings.Split(text, "\n")

	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, "#") {
			continue
		}

		kept = append(kept, line)
	}

	return strings.TrimSuffix(strings.Join(kept, "\n"), "\n")
}
