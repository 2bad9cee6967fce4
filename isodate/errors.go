package isodate

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDateString is matched by errors.Is for every *MalformedDateStringError.
	ErrMalformedDateString = errors.New("malformed date string")

	// ErrDateOutOfRange is matched by errors.Is for every *DateOutOfRangeError.
	ErrDateOutOfRange = errors.New("date out of range")
)

// MalformedDateStringError is returned when the input does not match any accepted shape.
type MalformedDateStringError struct {
	Input  string // the offending input
	Pos    int    // byte offset at which scanning failed
	Reason string
}

// Error returns a string representation of the error, implementing the error interface.
func (e *MalformedDateStringError) Error() string {
	return fmt.Sprintf("%v: %q: offset %d: %s", ErrMalformedDateString, e.Input, e.Pos, e.Reason)
}

// Is reports whether target is ErrMalformedDateString.
func (e *MalformedDateStringError) Is(target error) bool {
	return target == ErrMalformedDateString
}

// DateOutOfRangeError is returned when a well-formed date normalizes to a year outside [0000, 9999].
type DateOutOfRangeError struct {
	Input string // empty if the date did not come from a string
	Year  int    // year the normalized date would have had
}

// Error returns a string representation of the error, implementing the error interface.
func (e *DateOutOfRangeError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%v: year %d", ErrDateOutOfRange, e.Year)
	}
	return fmt.Sprintf("%v: %q: year %d", ErrDateOutOfRange, e.Input, e.Year)
}

// Is reports whether target is ErrDateOutOfRange.
func (e *DateOutOfRangeError) Is(target error) bool {
	return target == ErrDateOutOfRange
}

// malformed returns a malformed date string error for the scanner state.
func malformed(input string, rest string, reason string) error {
	return &MalformedDateStringError{Input: input, Pos: len(input) - len(rest), Reason: reason}
}
