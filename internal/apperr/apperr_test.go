package apperr_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/flightlog/internal/apperr"
)

var errSample = &apperr.Error{
	Kind:    apperr.StoreIO,
	Message: "unable to open %s",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt("flights.jsonl")

	assert.Equal(t, "unable to open flights.jsonl", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, apperr.StoreIO, apperr.KindOf(err))
}

func TestWrapPreservesCause(t *testing.T) {
	err := errSample.Fmt("flights.jsonl").Wrap(fs.ErrPermission)

	assert.Equal(
		t,
		"unable to open flights.jsonl: "+fs.ErrPermission.Error(),
		err.Error(),
	)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.ErrorIs(t, err, errSample)
}

func TestIsDistinguishesSentinels(t *testing.T) {
	other := &apperr.Error{Kind: apperr.StoreIO, Message: "disk full"}

	assert.NotErrorIs(t, errSample.Fmt("x"), other)
	assert.False(t, errors.Is(other, errSample))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, apperr.Kind(""), apperr.KindOf(errors.New("plain")))
}
