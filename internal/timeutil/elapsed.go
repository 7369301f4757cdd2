package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/flightlog/internal/apperr"
)

var errMalformedDuration = &apperr.Error{
	Kind:    apperr.MalformedDuration,
	Message: "elapsed time %q must be in minutes or hours+minutes (e.g. 123 or 2+03)",
}

// ElapsedTime is a flight duration as entered by the user.
//
// Values parsed from the hours+minutes form keep the minutes verbatim, so
// "2+75" yields Minutes == 75. Seconds and Duration fold any excess into
// the total.
type ElapsedTime struct {
	Hours   int
	Minutes int
}

// ParseElapsed reads either a total number of minutes ("123") or an
// hours+minutes pair ("2+03"). Both parts may be signed.
func ParseElapsed(s string) (ElapsedTime, error) {
	if hrs, mins, ok := strings.Cut(s, "+"); ok {
		h, err := atoi(hrs)
		if err != nil {
			return ElapsedTime{}, errMalformedDuration.Fmt(s).Wrap(err)
		}

		m, err := atoi(mins)
		if err != nil {
			return ElapsedTime{}, errMalformedDuration.Fmt(s).Wrap(err)
		}

		return ElapsedTime{Hours: h, Minutes: m}, nil
	}

	total, err := atoi(s)
	if err != nil {
		return ElapsedTime{}, errMalformedDuration.Fmt(s).Wrap(err)
	}

	h, m := MinsToHoursAndMins(total)

	return ElapsedTime{Hours: h, Minutes: m}, nil
}

// String renders the value as hours+minutes.
func (e ElapsedTime) String() string {
	return fmt.Sprintf("%d+%d", e.Hours, e.Minutes)
}

// Seconds returns the total elapsed time in seconds.
func (e ElapsedTime) Seconds() int64 {
	return int64(e.Hours)*3600 + int64(e.Minutes)*60
}

// Duration returns the total elapsed time.
func (e ElapsedTime) Duration() time.Duration {
	return time.Duration(e.Seconds()) * time.Second
}

// atoi parses a signed decimal integer that fits in 32 bits.
func atoi(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
