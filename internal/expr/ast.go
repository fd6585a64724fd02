// Package expr parses and evaluates ternary arithmetic expressions.
//
// Grammar (left-associative, standard precedence, no unary minus):
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := '(' expr ')' | number
//	number := digit+            digit in {0,1,2}
//
// Parsing builds an explicit tree; evaluation is a separate pass. Numeric
// literals never carry a sign — '-' is always the subtraction operator.
package expr

import "github.com/tritstack/tritsys/internal/ternary"

// Op is a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

func (o Op) String() string { return string(byte(o)) }

// Node is an expression tree node.
type Node interface {
	node()
}

// Literal is a ternary numeric literal.
type Literal struct {
	Value int64
}

// Binary applies Op to the results of Left and Right.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (Literal) node() {}
func (Binary) node()  {}

// Eval parses input and evaluates it under the given overflow mode. This is
// the one-shot entry point the CLI uses; errors abort at the first failure
// with no partial result.
func Eval(input string, mode ternary.OverflowMode) (int64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Evaluator{Mode: mode}.Eval(n)
}
