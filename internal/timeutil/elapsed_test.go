package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/flightlog/internal/apperr"
)

type elapsedTest struct {
	Input   string
	Want    ElapsedTime
	Seconds int64
}

var elapsedTestCases = []elapsedTest{
	{Input: "0", Want: ElapsedTime{0, 0}, Seconds: 0},
	{Input: "45", Want: ElapsedTime{0, 45}, Seconds: 2700},
	{Input: "60", Want: ElapsedTime{1, 0}, Seconds: 3600},
	{Input: "123", Want: ElapsedTime{2, 3}, Seconds: 7380},
	{Input: "-90", Want: ElapsedTime{-1, -30}, Seconds: -5400},
	{Input: "-30", Want: ElapsedTime{0, -30}, Seconds: -1800},
	{Input: "2+30", Want: ElapsedTime{2, 30}, Seconds: 9000},
	{Input: "2+03", Want: ElapsedTime{2, 3}, Seconds: 7380},
	{Input: "2+75", Want: ElapsedTime{2, 75}, Seconds: 11700},
	{Input: "0+0", Want: ElapsedTime{0, 0}, Seconds: 0},
	{Input: "-1+-5", Want: ElapsedTime{-1, -5}, Seconds: -3900},
}

func TestParseElapsed(t *testing.T) {
	for _, tc := range elapsedTestCases {
		t.Run(tc.Input, func(t *testing.T) {
			got, err := ParseElapsed(tc.Input)
			require.NoError(t, err)

			assert.Equal(t, tc.Want, got)
			assert.Equal(t, tc.Seconds, got.Seconds())
			assert.Equal(
				t,
				time.Duration(tc.Seconds)*time.Second,
				got.Duration(),
			)
		})
	}
}

func TestParseElapsedHoursPlusMinutesIsVerbatim(t *testing.T) {
	for h := -3; h <= 3; h++ {
		for _, m := range []int{-61, -1, 0, 1, 59, 60, 75, 600} {
			got, err := ParseElapsed(fmt.Sprintf("%d+%d", h, m))
			require.NoError(t, err)

			assert.Equal(t, ElapsedTime{Hours: h, Minutes: m}, got)
			assert.Equal(t, int64(h)*3600+int64(m)*60, got.Seconds())
		}
	}
}

func TestParseElapsedTotalMinutes(t *testing.T) {
	for total := -200; total <= 200; total += 7 {
		got, err := ParseElapsed(strconv.Itoa(total))
		require.NoError(t, err)

		assert.Equal(t, total/60, got.Hours)
		assert.Equal(t, total%60, got.Minutes)
		assert.Equal(t, int64(total)*60, got.Seconds())
	}
}

func TestParseElapsedMalformed(t *testing.T) {
	inputs := []string{"", "abc", "1.5", "a+1", "1+", "+", "1+2+3", "+15", " 12", "99999999999"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseElapsed(in)
			require.Error(t, err)

			assert.ErrorIs(t, err, errMalformedDuration)
			assert.Equal(t, apperr.MalformedDuration, apperr.KindOf(err))

			var numErr *strconv.NumError
			assert.True(t, errors.As(err, &numErr))
		})
	}
}

func TestElapsedTimeString(t *testing.T) {
	assert.Equal(t, "2+75", ElapsedTime{2, 75}.String())
	assert.Equal(t, "-1+-30", ElapsedTime{-1, -30}.String())
}
