// Package flight assembles flight records from user input
package flight

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/flightlog/internal/apperr"
	"github.com/ayoisaiah/flightlog/internal/models"
	"github.com/ayoisaiah/flightlog/internal/timeutil"
)

var (
	errNoOrigin = &apperr.Error{
		Kind:    apperr.InvalidRoute,
		Message: "an origin is required",
	}

	errNoWaypoints = &apperr.Error{
		Kind:    apperr.InvalidRoute,
		Message: "at least one waypoint after the origin is required",
	}
)

// Input is the raw route and timing information for a flight.
type Input struct {
	Origin    string
	Waypoints []string
	Elapsed   timeutil.ElapsedTime
	Notes     string
}

// Builder constructs records. Now and NewID are overridable for tests.
type Builder struct {
	Now   func() time.Time
	NewID func() uuid.UUID
}

// NewBuilder returns a Builder that stamps records with the current time
// and a random id.
func NewBuilder() *Builder {
	return &Builder{
		Now:   time.Now,
		NewID: uuid.New,
	}
}

// Build returns the record for in. Waypoints are uppercased with the origin
// first, and notes that are blank are left out.
func (b *Builder) Build(in Input) (*models.Record, error) {
	if strings.TrimSpace(in.Origin) == "" {
		return nil, errNoOrigin
	}

	if len(in.Waypoints) == 0 {
		return nil, errNoWaypoints
	}

	waypoints := make([]string, 0, len(in.Waypoints)+1)
	waypoints = append(waypoints, strings.ToUpper(in.Origin))

	for _, w := range in.Waypoints {
		waypoints = append(waypoints, strings.ToUpper(w))
	}

	rec := &models.Record{
		ID:        b.NewID(),
		Created:   b.Now().UTC().Truncate(time.Second),
		Waypoints: waypoints,
		Elapsed:   in.Elapsed.Seconds(),
	}

	if strings.TrimSpace(in.Notes) != "" {
		rec.Notes = in.Notes
	}

	return rec, nil
}
