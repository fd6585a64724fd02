package expr

import (
	"errors"

	"github.com/tritstack/tritsys/internal/ternary"
)

// Sentinel errors. InvalidDigit and Empty are shared with the ternary codec
// so callers can match either layer with one errors.Is check. Character and
// position context travels in *ternary.SyntaxError.
var (
	ErrInvalidDigit   = ternary.ErrInvalidDigit
	ErrEmpty          = ternary.ErrEmpty
	ErrUnexpectedChar = errors.New("expr: unexpected character")
	ErrMissingParen   = errors.New("expr: missing closing parenthesis")
	ErrDivisionByZero = errors.New("expr: division by zero")
)
