package store

import "github.com/ayoisaiah/flightlog/internal/models"

// Appender is the storage interface for flight records.
type Appender interface {
	// Append adds rec to the end of the log
	Append(rec *models.Record) error
	// Path returns where records are written
	Path() string
}

var _ Appender = (*Logbook)(nil)
