package store

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/flightlog/internal/apperr"
	"github.com/ayoisaiah/flightlog/internal/models"
	"github.com/ayoisaiah/flightlog/internal/testutil"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func sampleRecords() []*models.Record {
	return []*models.Record{
		{
			ID:        uuid.MustParse("6f1c1f0e-8d1a-4f4e-9a53-0c1f7b3c2a10"),
			Created:   time.Date(2024, time.March, 9, 8, 15, 30, 0, time.UTC),
			Waypoints: []string{"JFK", "LAX"},
			Elapsed:   9000,
			Notes:     "test",
		},
		{
			Waypoints: []string{"KBOS", "KPVD"},
			Elapsed:   2400,
		},
	}
}

func TestAppendCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flightlog", "flights.jsonl")
	lb := NewLogbook(path)

	require.NoError(t, lb.Append(sampleRecords()[0]))

	assert.Equal(t, path, lb.Path())
	assert.Len(t, testutil.ReadLines(t, path), 1)
}

func TestAppendTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.jsonl")
	lb := NewLogbook(path)

	for _, rec := range sampleRecords() {
		require.NoError(t, lb.Append(rec))
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "two appended records",
		GoldenFile: "append_twice",
		Snapshot:   b,
	})
}

func TestAppendPreservesExistingLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.jsonl")

	existing := []byte("{\"waypoints\":[\"A\",\"B\"],\"elapsed\":60}\nnot json but not ours to touch\n")
	require.NoError(t, os.WriteFile(path, existing, 0o644))

	lb := NewLogbook(path)
	rec := sampleRecords()[0]

	require.NoError(t, lb.Append(rec))
	require.NoError(t, lb.Append(rec))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(b, existing))
	assert.Len(t, testutil.ReadLines(t, path), 4)
}

func TestAppendEncodeFailureWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "flights.jsonl")
	lb := NewLogbook(path)

	// A year outside [0,9999] cannot be marshalled.
	rec := &models.Record{
		Created:   time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC),
		Waypoints: []string{"A", "B"},
	}

	err := lb.Append(rec)
	require.Error(t, err)

	assert.ErrorIs(t, err, errEncode)
	assert.NoDirExists(t, filepath.Dir(path))
}

func TestAppendUnwritableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))

	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})

	err := NewLogbook(filepath.Join(dir, "flights.jsonl")).Append(sampleRecords()[0])
	require.Error(t, err)

	assert.ErrorIs(t, err, errOpen)
	assert.Equal(t, apperr.StoreIO, apperr.KindOf(err))
}

func TestAppendPathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := NewLogbook(dir).Append(sampleRecords()[0])
	require.Error(t, err)

	assert.Equal(t, apperr.StoreIO, apperr.KindOf(err))
}

func TestDecodeBothShapes(t *testing.T) {
	for _, want := range sampleRecords() {
		line, err := Encode(want)
		require.NoError(t, err)

		assert.Equal(t, byte('\n'), line[len(line)-1])

		got, err := Decode(line)
		require.NoError(t, err)

		assert.Equal(t, want.ID, got.ID)
		assert.True(t, want.Created.Equal(got.Created))
		assert.Equal(t, want.Waypoints, got.Waypoints)
		assert.Equal(t, want.Elapsed, got.Elapsed)
		assert.Equal(t, want.Notes, got.Notes)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"waypoints": "JFK"}`))
	assert.ErrorIs(t, err, errDecode)

	_, err = Decode([]byte(`{"elapsed": ` + "1e400" + `}`))
	assert.ErrorIs(t, err, errDecode)
}
