package expr

import (
	"unicode"

	"github.com/tritstack/tritsys/internal/ternary"
)

// parser is a cursor over the input. The position only moves forward;
// nothing is ever re-read after it is consumed.
type parser struct {
	input []rune
	pos   int
}

// Parse builds an expression tree from input. Whitespace may appear before
// any token. Parsing stops at the first error; after a complete parse any
// remaining non-whitespace input is ErrUnexpectedChar.
func Parse(input string) (Node, error) {
	p := &parser{input: []rune(input)}
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, ErrEmpty
	}

	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, &ternary.SyntaxError{Err: ErrUnexpectedChar, Char: p.input[p.pos], Pos: p.pos}
	}
	return n, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

// peek returns the current rune, or 0 when input is exhausted.
func (p *parser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles '+' and '-' at the lowest precedence level.
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		c := p.peek()
		if c != '+' && c != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: Op(c), Left: left, Right: right}
	}
}

// parseTerm handles '*' and '/'.
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		c := p.peek()
		if c != '*' && c != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: Op(c), Left: left, Right: right}
	}
}

// parseFactor handles parenthesized subexpressions and numbers.
func (p *parser) parseFactor() (Node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, &ternary.SyntaxError{Err: ErrUnexpectedChar, Char: 0, Pos: p.pos}
	}
	if p.peek() == '(' {
		p.pos++
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, ErrMissingParen
		}
		p.pos++
		return n, nil
	}
	return p.parseNumber()
}

// parseNumber reads one or more ternary digits. Signs are not accepted here.
func (p *parser) parseNumber() (Node, error) {
	start := p.pos
	var value int64
	for p.pos < len(p.input) && ternary.Digit(p.input[p.pos]) {
		value = value*3 + int64(p.input[p.pos]-'0')
		p.pos++
	}
	if p.pos == start {
		return nil, &ternary.SyntaxError{Err: ErrInvalidDigit, Char: p.input[p.pos], Pos: p.pos}
	}
	return Literal{Value: value}, nil
}
