package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/flightlog/internal/models"
	"github.com/ayoisaiah/flightlog/internal/timeutil"
)

func TestFlightLogged(t *testing.T) {
	pterm.DisableColor()

	rec := &models.Record{
		Created:   time.Date(2024, time.March, 9, 8, 15, 30, 0, time.UTC),
		Waypoints: []string{"JFK", "ORD", "LAX"},
		Elapsed:   11700,
		Notes:     "gusty\nsmooth after FL200",
	}

	var out bytes.Buffer

	err := FlightLogged(&out, rec, timeutil.ElapsedTime{Hours: 2, Minutes: 75})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "JFK → ORD → LAX")
	assert.Contains(t, out.String(), "2+75 (3h15m0s)")
	assert.Contains(t, out.String(), "gusty ⏎ smooth after FL200")
	assert.Contains(t, out.String(), "flight logged successfully")
}

func TestFlightJSON(t *testing.T) {
	rec := &models.Record{
		Waypoints: []string{"KBOS", "KPVD"},
		Elapsed:   2400,
	}

	var out bytes.Buffer

	require.NoError(t, FlightJSON(&out, rec))

	assert.Equal(t, `{"waypoints":["KBOS","KPVD"],"elapsed":2400}`+"\n", out.String())
}
