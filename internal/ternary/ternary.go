// Package ternary implements the base-3 digit-string codec shared by the
// expression evaluator, the matrix serializer, and the opcode codec.
//
// A ternary string is an optional leading '-' followed by one or more digits
// from {0,1,2}. Parse accepts the sign; the expression grammar's literal
// parser (internal/expr) does not — the '-' there is reserved for binary
// subtraction.
package ternary

import "strings"

// Digit reports whether r is a valid ternary digit.
func Digit(r rune) bool {
	return r >= '0' && r <= '2'
}

// Format renders n as a ternary string. Zero encodes as "0"; no other
// encoding has leading zeros.
func Format(n int64) string {
	if n == 0 {
		return "0"
	}

	var digits [41]byte // enough for int64 plus sign
	i := len(digits)

	// Collect remainders least-significant first. Work on the negated
	// absolute value so math.MinInt64 does not overflow.
	v := n
	neg := v < 0
	if !neg {
		v = -v
	}
	for v != 0 {
		i--
		digits[i] = byte('0' - v%3)
		v /= 3
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}

// Parse decodes a ternary string into an integer. An optional leading '-'
// is accepted. It returns ErrEmpty for empty input and a *SyntaxError
// wrapping ErrInvalidDigit for the first character outside {0,1,2}.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, ErrEmpty
	}

	rest := s
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
		if rest == "" {
			return 0, ErrEmpty
		}
	}

	var value int64
	for i, r := range rest {
		if !Digit(r) {
			return 0, &SyntaxError{Err: ErrInvalidDigit, Char: r, Pos: i}
		}
		value = value*3 + int64(r-'0')
	}
	if neg {
		value = -value
	}
	return value, nil
}
