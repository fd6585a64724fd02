package ternary

import (
	"errors"
	"fmt"
)

// Sentinel errors for the codec. Callers match with errors.Is; positional
// context travels in SyntaxError.
var (
	// ErrEmpty is returned when a ternary string (or expression) has no
	// digits at all.
	ErrEmpty = errors.New("ternary: empty input")

	// ErrInvalidDigit is returned for a character outside {0,1,2} where a
	// digit was required.
	ErrInvalidDigit = errors.New("ternary: invalid digit")

	// ErrOverflow is returned by checked arithmetic under OverflowError.
	ErrOverflow = errors.New("ternary: integer overflow")
)

// SyntaxError reports the offending character and its position alongside the
// sentinel it unwraps to.
type SyntaxError struct {
	Err  error
	Char rune
	Pos  int
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%v at position %d (end of input)", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v %q at position %d", e.Err, e.Char, e.Pos)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
