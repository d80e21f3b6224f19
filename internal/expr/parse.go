package expr

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/pocketcalc/internal/domain"
)

var ErrNonFinite = errors.New("result is not a finite number")

type Node interface {
	Eval() (float64, error)
}

type NumberNode struct {
	Value float64
}

type BinaryNode struct {
	Op    byte
	Left  Node
	Right Node
}

func (n NumberNode) Eval() (float64, error) {
	return n.Value, nil
}

func (n BinaryNode) Eval() (float64, error) {
	left, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '*':
		return left * right, nil
	case '/':
		if right == 0 {
			return 0, domain.ErrDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", domain.ErrMalformedExpression, n.Op)
	}
}

type parser struct {
	tokens []Token
	pos    int
}

// Parse builds an expression tree with '*' and '/' binding tighter than '+'
// and '-'. Operators of equal precedence associate to the left.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", domain.ErrMalformedExpression)
	}

	p := &parser{tokens: tokens}
	node, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected token at position %d", domain.ErrMalformedExpression, p.pos)
	}

	return node, nil
}

// Evaluate tokenizes, parses and evaluates a normalized expression.
func Evaluate(s string) (float64, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return 0, err
	}

	node, err := Parse(tokens)
	if err != nil {
		return 0, err
	}

	value, err := node.Eval()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNonFinite
	}

	return value, nil
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOperator('+', '-')
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = BinaryNode{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseProduct() (Node, error) {
	left, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOperator('*', '/')
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		left = BinaryNode{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseNumber() (Node, error) {
	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("%w: missing operand", domain.ErrMalformedExpression)
	}

	n, ok := p.tokens[p.pos].(Number)
	if !ok {
		return nil, fmt.Errorf("%w: expected number at position %d", domain.ErrMalformedExpression, p.pos)
	}
	p.pos++

	return NumberNode{Value: n.Value}, nil
}

func (p *parser) peekOperator(symbols ...byte) (byte, bool) {
	if p.pos >= len(p.tokens) {
		return 0, false
	}

	op, ok := p.tokens[p.pos].(Operator)
	if !ok {
		return 0, false
	}
	for _, symbol := range symbols {
		if op.Symbol == symbol {
			return symbol, true
		}
	}

	return 0, false
}
