// Package domainerrors carries coded errors across the core/application
// boundary. Callers branch on Code, never on message text.
package domainerrors

import (
	"errors"
)

// Code classifies a domain error.
type Code string

const (
	// CodeInvalidLength: input is longer than 9 characters, or an integer
	// is above the largest 9-digit value.
	CodeInvalidLength Code = "invalid_length"
	// CodeInvalidDigit: a character (or small integer) outside 0-9.
	CodeInvalidDigit Code = "invalid_digit"
	// CodeInvalidRange: a negative value where a non-negative one is required.
	CodeInvalidRange Code = "invalid_range"
	// CodeInvalidInput: malformed input at the application boundary
	// (command-line arguments, configuration).
	CodeInvalidInput Code = "invalid_input"
	CodeInternal     Code = "internal_error"
)

// Error is a domain error with a stable code and, for parse failures, the
// offending input.
type Error struct {
	Code    Code
	Message string
	Input   string
	Err     error

	hasInput bool
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a code and message. Wrap(nil, ...) returns nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// WithInput returns a copy of e that records the offending input.
func (e *Error) WithInput(input string) *Error {
	cp := *e
	cp.Input = input
	cp.hasInput = true
	return &cp
}

func (e *Error) Error() string {
	msg := e.Message
	if e.hasInput {
		msg += ": " + e.Input
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so sentinel-style comparisons work:
//
//	errors.Is(err, dErrors.New(dErrors.CodeInvalidDigit, ""))
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// HasCode reports whether any error in err's chain is an *Error with code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the code of the outermost *Error in err's chain, or "" if
// there is none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// InputOf returns the offending input recorded on the first *Error in err's
// chain that has one.
func InputOf(err error) (string, bool) {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return "", false
		}
		if de.hasInput {
			return de.Input, true
		}
		err = de.Err
	}
	return "", false
}
