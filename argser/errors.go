package argser

import (
	"errors"
	"strconv"
)

// Reason categorizes a parse failure.
type Reason string

const (
	// ReasonUnknown is reported for an option-shaped token that matches no
	// option or alias.
	ReasonUnknown Reason = "unknown"
	// ReasonIncomplete is reported when a value-bearing option reaches the end
	// of input, or a "--" marker, before a value is found.
	ReasonIncomplete Reason = "incomplete"
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrUnknown    = errors.New("unknown option")
	ErrIncomplete = errors.New("option requires a value")
)

// Error is returned by Parse when an argument cannot be resolved.
type Error struct {
	Arg        string // offending token as it appeared in the stream
	Reason     Reason
	Suggestion string // closest known option, when suggestions are enabled
}

func (e *Error) Error() string {
	var msg string
	switch e.Reason {
	case ReasonUnknown:
		msg = "option " + strconv.Quote(e.Arg) + " is unknown"
	case ReasonIncomplete:
		msg = "option " + strconv.Quote(e.Arg) + " requires a value"
	default:
		msg = "option " + strconv.Quote(e.Arg) + ": unknown error"
	}
	if e.Suggestion != "" {
		msg += " (did you mean " + strconv.Quote(e.Suggestion) + "?)"
	}
	return msg
}

// Is reports whether target is the sentinel for e's reason.
func (e *Error) Is(target error) bool {
	switch e.Reason {
	case ReasonUnknown:
		return target == ErrUnknown
	case ReasonIncomplete:
		return target == ErrIncomplete
	default:
		return false
	}
}

// newError builds a parse error for arg
func newError(arg string, reason Reason) *Error {
	return &Error{Arg: arg, Reason: reason}
}
