package expr

import (
	"fmt"
	"math"

	"github.com/tritstack/tritsys/internal/ternary"
)

// Evaluator walks an expression tree bottom-up. The zero value evaluates
// with wrapping arithmetic.
type Evaluator struct {
	Mode ternary.OverflowMode
}

// Eval computes the value of n. Division truncates toward zero; a zero
// divisor fails with ErrDivisionByZero and discards the whole evaluation.
func (e Evaluator) Eval(n Node) (int64, error) {
	switch t := n.(type) {
	case Literal:
		return t.Value, nil
	case Binary:
		left, err := e.Eval(t.Left)
		if err != nil {
			return 0, err
		}
		right, err := e.Eval(t.Right)
		if err != nil {
			return 0, err
		}
		return e.apply(t.Op, left, right)
	default:
		return 0, fmt.Errorf("expr: unknown node %T", n)
	}
}

func (e Evaluator) apply(op Op, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return e.Mode.Add(a, b)
	case OpSub:
		return e.Mode.Sub(a, b)
	case OpMul:
		return e.Mode.Mul(a, b)
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		// MinInt64 / -1 is the one quotient that does not fit.
		if a == math.MinInt64 && b == -1 {
			if e.Mode == ternary.OverflowError {
				return 0, ternary.ErrOverflow
			}
			return math.MinInt64, nil
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("expr: unknown operator %q", op)
	}
}
