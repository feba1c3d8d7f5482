// Package apperr classifies failures into the three classes the API
// surfaces: caller mistakes, missing resources, and store failures.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindStore is the default for anything unclassified.
	KindStore Kind = iota
	KindValidation
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Store wraps an underlying store failure. The wrapped message is surfaced
// verbatim in responses.
func Store(msg string, err error) *Error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}

// KindOf reports the class of err. Unrecognized errors count as store
// failures so they map to a 500.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}
