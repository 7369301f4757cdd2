package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is one logged flight. Records written before id and created were
// introduced carry only waypoints, elapsed and notes; both shapes decode
// into this type.
type Record struct {
	ID        uuid.UUID `json:"id,omitzero"`
	Created   time.Time `json:"created,omitzero"`
	Waypoints []string  `json:"waypoints"`
	// Elapsed is the flight time in whole seconds.
	Elapsed int64  `json:"elapsed"`
	Notes   string `json:"notes,omitempty"`
}

// Duration returns the elapsed flight time.
func (r *Record) Duration() time.Duration {
	return time.Duration(r.Elapsed) * time.Second
}

// Origin returns the first waypoint.
func (r *Record) Origin() string {
	if len(r.Waypoints) == 0 {
		return ""
	}

	return r.Waypoints[0]
}

// Destination returns the last waypoint.
func (r *Record) Destination() string {
	if len(r.Waypoints) == 0 {
		return ""
	}

	return r.Waypoints[len(r.Waypoints)-1]
}
