// Package store persists flight records to an append-only JSON-Lines file
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/flightlog/internal/apperr"
	"github.com/ayoisaiah/flightlog/internal/models"
	"github.com/ayoisaiah/flightlog/internal/osutil"
)

var (
	errEncode = &apperr.Error{
		Kind:    apperr.StoreIO,
		Message: "unable to encode flight record",
	}

	errCreateDir = &apperr.Error{
		Kind:    apperr.StoreIO,
		Message: "unable to create data directory %s",
	}

	errOpen = &apperr.Error{
		Kind:    apperr.StoreIO,
		Message: "unable to open logbook %s",
	}

	errWrite = &apperr.Error{
		Kind:    apperr.StoreIO,
		Message: "unable to write to logbook %s",
	}

	errDecode = &apperr.Error{
		Kind:    apperr.StoreIO,
		Message: "malformed logbook entry",
	}
)

// Logbook is a JSON-Lines file of flight records. Existing lines are never
// read or rewritten by Append.
type Logbook struct {
	path string
}

// NewLogbook returns a Logbook backed by the file at path. Nothing is
// created until the first Append.
func NewLogbook(path string) *Logbook {
	return &Logbook{path: path}
}

// Path returns the location of the logbook file.
func (l *Logbook) Path() string {
	return l.path
}

// Append encodes rec and adds it to the end of the logbook as a single line,
// creating the file and its parent directories if necessary. The record is
// fully encoded before the file is touched.
func (l *Logbook) Append(rec *models.Record) (err error) {
	line, err := Encode(rec)
	if err != nil {
		return err
	}

	dir := filepath.Dir(l.path)

	if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return errCreateDir.Fmt(dir).Wrap(err)
	}

	f, err := os.OpenFile(
		l.path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		osutil.FilePermission,
	)
	if err != nil {
		return errOpen.Fmt(l.path).Wrap(err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errWrite.Fmt(l.path).Wrap(cerr)
		}
	}()

	if _, err = f.Write(line); err != nil {
		return errWrite.Fmt(l.path).Wrap(err)
	}

	if err = f.Sync(); err != nil {
		return errWrite.Fmt(l.path).Wrap(err)
	}

	return nil
}

// Encode returns the newline-terminated JSON encoding of rec.
func Encode(rec *models.Record) ([]byte, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, errEncode.Wrap(err)
	}

	return append(b, '\n'), nil
}

// Decode parses a single logbook line. Lines without an id or creation time
// are accepted.
func Decode(line []byte) (*models.Record, error) {
	var rec models.Record

	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, errDecode.Wrap(err)
	}

	return &rec, nil
}
