// Package apperr defines the error values surfaced to the user
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error by the stage of the run that produced it.
type Kind string

const (
	MalformedDuration Kind = "malformed duration"
	InvalidRoute      Kind = "invalid route"
	InvalidDate       Kind = "invalid date"
	EditorIO          Kind = "editor"
	StoreIO           Kind = "store"
	Config            Kind = "config"
	Usage             Kind = "usage"
)

// Error is an application error with an optional underlying cause.
type Error struct {
	Cause   error
	Kind    Kind
	Message string
	// template is the unformatted message of the sentinel this error was
	// derived from.
	template string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error derived from the same sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.Kind == t.Kind && e.tmpl() == t.tmpl()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Kind:     e.Kind,
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.tmpl(),
	}
}

// Wrap returns a copy of the error that carries err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Kind:     e.Kind,
		Message:  e.Message,
		Cause:    err,
		template: e.tmpl(),
	}
}

func (e *Error) tmpl() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

// KindOf returns the kind of the first *Error in err's chain, or the empty
// string if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}
