// Package report prints the outcome of a run to the terminal
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/flightlog/internal/models"
	"github.com/ayoisaiah/flightlog/internal/timeutil"
	"github.com/ayoisaiah/flightlog/internal/ui"
	"github.com/ayoisaiah/flightlog/store"
)

const dateFormat = "Jan 02, 2006 03:04 PM MST"

// FlightLogged prints a summary of rec after it has been appended.
func FlightLogged(w io.Writer, rec *models.Record, elapsed timeutil.ElapsedTime) error {
	notes := strings.ReplaceAll(rec.Notes, "\n", " ⏎ ")

	created := ""
	if !rec.Created.IsZero() {
		created = rec.Created.Local().Format(dateFormat)
	}

	data := [][]string{
		{"ROUTE", "ELAPSED", "LOGGED AT", "NOTES"},
		{
			ui.Cyan(strings.Join(rec.Waypoints, " → ")),
			fmt.Sprintf("%s (%s)", ui.Highlight(elapsed.String()), elapsed.Duration()),
			created,
			notes,
		},
	}

	if err := ui.PrintTable(data, w); err != nil {
		return err
	}

	pterm.Fprintln(w, ui.Green("flight logged successfully"))

	return nil
}

// FlightJSON writes the logbook line for rec.
func FlightJSON(w io.Writer, rec *models.Record) error {
	line, err := store.Encode(rec)
	if err != nil {
		return err
	}

	_, err = w.Write(line)

	return err
}

// Error prints err to standard error.
func Error(err error) {
	pterm.Error.Println(err)
}
