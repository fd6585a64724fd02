package opcode

import (
	"errors"
	"fmt"
)

// Named opcode numbers, matching the discrete opcode table of the original
// ternary system.
const (
	TAdd int64 = 0x01
	TSub int64 = 0x02
	TMul int64 = 0x03
	TMod int64 = 0x04
	TAnd int64 = 0x05
	TOr  int64 = 0x06
	TExp int64 = 0x0B
	TGcd int64 = 0x0C
)

var (
	// ErrBadChecksum is returned when an encoding fails validation.
	ErrBadChecksum = errors.New("opcode: checksum mismatch")

	// ErrUnknownOpcode is returned for a valid encoding of a number that is
	// not in the opcode table.
	ErrUnknownOpcode = errors.New("opcode: unknown opcode")
)

// Execute validates and decodes an encoded opcode, then applies it to the
// operands. Arithmetic follows the wrap policy of the original opcode
// interpreter.
func Execute(encoded string, a, b int64) (int64, error) {
	op, err := Decode(encoded)
	if err != nil {
		return 0, err
	}

	switch op {
	case TAdd:
		return a + b, nil
	case TSub:
		return a - b, nil
	case TMul:
		return a * b, nil
	case TMod:
		if b == 0 {
			return 0, fmt.Errorf("opcode: modulo by zero")
		}
		r := a % b
		if r < 0 {
			r += abs(b)
		}
		return r, nil
	case TAnd:
		return tritwise(a, b, min64), nil
	case TOr:
		return tritwise(a, b, max64), nil
	case TExp:
		if b < 0 {
			return 0, fmt.Errorf("opcode: negative exponent")
		}
		result := int64(1)
		for i := int64(0); i < b; i++ {
			result *= a
		}
		return result, nil
	case TGcd:
		x, y := abs(a), abs(b)
		for y != 0 {
			x, y = y, x%y
		}
		return x, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOpcode, op)
	}
}

// tritwise combines the base-3 digits of a and b position by position. The
// ternary AND of the original takes the per-trit minimum, OR the maximum;
// signs apply to the whole value, so the combination runs on magnitudes.
func tritwise(a, b int64, pick func(x, y int64) int64) int64 {
	ma, mb := abs(a), abs(b)
	var result, place int64 = 0, 1
	for ma != 0 || mb != 0 {
		result += pick(ma%3, mb%3) * place
		place *= 3
		ma /= 3
		mb /= 3
	}
	return result
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func min64(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}

func max64(x, y int64) int64 {
	if x > y {
		return x
	}
	return y
}
