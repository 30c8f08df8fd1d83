package hpgl

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCommands is returned when a stream contains no usable PU or PD command.
	ErrNoCommands = errors.New("no valid commands found")

	ErrMalformedArgs  = errors.New("malformed arguments")
	ErrOddCoordinates = errors.New("odd number of coordinates")
)

// Warning reports a command which was dropped by the interpreter.
type Warning struct {
	Index   int // position of the command in the lexed stream
	Command Command
	Err     error
}

func (w Warning) Error() string {
	return fmt.Sprintf("command %d (%s): %s", w.Index, w.Command, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }

// ErrorMode determines if the reader ignores, errors out, or logs a warning
// when a command is dropped.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of ErrorMode.String
func ParseErrorMode(s string) (ErrorMode, error) {
	switch s {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("unknown error mode %q", s)
}
