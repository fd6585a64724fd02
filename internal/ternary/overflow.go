package ternary

import (
	"fmt"
	"math"
)

// OverflowMode decides what fixed-width arithmetic does when a result does
// not fit in int64. The original left this to the build mode of its runtime;
// here it is an explicit, configurable policy.
type OverflowMode int

const (
	// OverflowWrap silently wraps around, matching the original's release
	// behavior. This is the default.
	OverflowWrap OverflowMode = iota

	// OverflowError makes the affected operation fail with ErrOverflow.
	OverflowError
)

// ParseOverflowMode maps a config string to an OverflowMode.
func ParseOverflowMode(s string) (OverflowMode, error) {
	switch s {
	case "", "wrap":
		return OverflowWrap, nil
	case "error":
		return OverflowError, nil
	default:
		return OverflowWrap, fmt.Errorf("ternary: unknown overflow mode %q (want wrap or error)", s)
	}
}

func (m OverflowMode) String() string {
	if m == OverflowError {
		return "error"
	}
	return "wrap"
}

// Add applies the policy to a+b.
func (m OverflowMode) Add(a, b int64) (int64, error) {
	sum := a + b
	if m == OverflowError && ((b > 0 && sum < a) || (b < 0 && sum > a)) {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub applies the policy to a-b.
func (m OverflowMode) Sub(a, b int64) (int64, error) {
	diff := a - b
	if m == OverflowError && ((b < 0 && diff < a) || (b > 0 && diff > a)) {
		return 0, ErrOverflow
	}
	return diff, nil
}

// Mul applies the policy to a*b.
func (m OverflowMode) Mul(a, b int64) (int64, error) {
	prod := a * b
	if m == OverflowError && a != 0 {
		// a == -1 with b == MinInt64 wraps, and prod/a would itself trap.
		if a == -1 {
			if b == math.MinInt64 {
				return 0, ErrOverflow
			}
		} else if prod/a != b {
			return 0, ErrOverflow
		}
	}
	return prod, nil
}
