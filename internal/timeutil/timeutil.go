// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/flightlog/internal/apperr"
)

const minutesInAnHour = 60

var errInvalidDate = &apperr.Error{
	Kind:    apperr.InvalidDate,
	Message: "unable to understand the date %q",
}

// MinsToHoursAndMins expresses a minutes value in hours and mins. Division
// truncates toward zero so the remainder carries the sign of val.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// ParseDate converts an absolute or relative date expression such as
// "yesterday 14:30" or "2024-03-09 08:00" into a UTC timestamp. Relative
// expressions are resolved against now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dateparser.Past,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time.UTC(), nil
}

// Stamp formats t as an RFC 3339 timestamp in UTC.
func Stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
