// Package opcode implements the checksummed opcode codec: a ternary string
// followed by exactly one checksum digit, where the checksum is the sum of
// the ternary digits modulo 3.
//
// The checksum deliberately skips any character outside {0,1,2}, so a
// leading '-' does not participate: a negative opcode checksums identically
// to its absolute value. Encode and Validate round-trip under that rule, and
// the behavior is kept as documented rather than tightened.
package opcode

import (
	"github.com/tritstack/tritsys/internal/ternary"
)

// Encode renders n as its ternary string plus one checksum digit.
func Encode(n int64) string {
	t := ternary.Format(n)
	return t + string(rune('0'+digitSum(t)))
}

// Validate reports whether s is a well-formed encoding: at least two
// characters, a trailing digit in {0,1,2}, and a checksum that matches the
// digit sum of the leading code.
func Validate(s string) bool {
	if len(s) < 2 {
		return false
	}
	code, check := s[:len(s)-1], rune(s[len(s)-1])
	if !ternary.Digit(check) {
		return false
	}
	return digitSum(code) == int(check-'0')
}

// Decode strips and verifies the checksum digit, then parses the remaining
// ternary code. Tampered or malformed encodings fail with ErrBadChecksum.
func Decode(s string) (int64, error) {
	if !Validate(s) {
		return 0, ErrBadChecksum
	}
	return ternary.Parse(s[:len(s)-1])
}

// digitSum is the mod-3 sum of the characters of s that are ternary digits.
// Everything else, the sign included, is skipped.
func digitSum(s string) int {
	sum := 0
	for _, r := range s {
		if ternary.Digit(r) {
			sum += int(r - '0')
		}
	}
	return sum % 3
}
