package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordAccessors(t *testing.T) {
	rec := &Record{
		Waypoints: []string{"JFK", "ORD", "LAX"},
		Elapsed:   9000,
	}

	assert.Equal(t, 2*time.Hour+30*time.Minute, rec.Duration())
	assert.Equal(t, "JFK", rec.Origin())
	assert.Equal(t, "LAX", rec.Destination())
}

func TestEmptyRecordAccessors(t *testing.T) {
	rec := &Record{}

	assert.Empty(t, rec.Origin())
	assert.Empty(t, rec.Destination())
	assert.Zero(t, rec.Duration())
}
