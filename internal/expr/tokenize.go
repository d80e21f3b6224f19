package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/pocketcalc/internal/domain"
)

// Normalize maps the display division sign to '/', strips thousands
// separators and removes all whitespace.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "÷", "/")
	s = strings.ReplaceAll(s, ",", "")
	return strings.Join(strings.Fields(s), "")
}

// Tokenize splits a normalized expression into numbers and operators. A '+' or
// '-' in operand position is folded into the following number as its sign.
func Tokenize(s string) ([]Token, error) {
	tokens := make([]Token, 0, len(s)/2+1)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case (c == '+' || c == '-') && expectsOperand(tokens):
			end := scanNumber(s, i+1)
			if end == i+1 {
				return nil, fmt.Errorf("%w: sign without operand at offset %d", domain.ErrMalformedExpression, i)
			}
			n, err := parseNumber(s[i:end])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, n)
			i = end
		case isOperatorByte(c):
			tokens = append(tokens, Operator{Symbol: c})
			i++
		case c == '.' || isDigit(c):
			end := scanNumber(s, i)
			n, err := parseNumber(s[i:end])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, n)
			i = end
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", domain.ErrMalformedExpression, c, i)
		}
	}

	return tokens, nil
}

// ParseOperand parses a single signed number, tolerating thousands separators
// and surrounding whitespace.
func ParseOperand(s string) (float64, error) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	tokens, err := Tokenize(trimmed)
	if err != nil || len(tokens) != 1 {
		return 0, fmt.Errorf("parse operand %q: %w", s, domain.ErrNotANumber)
	}

	n, ok := tokens[0].(Number)
	if !ok {
		return 0, fmt.Errorf("parse operand %q: %w", s, domain.ErrNotANumber)
	}

	return n.Value, nil
}

// FormatOperand renders v in its shortest round-trip decimal form without
// grouping. Negative zero renders as "0".
func FormatOperand(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func expectsOperand(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	_, ok := tokens[len(tokens)-1].(Operator)
	return ok
}

func scanNumber(s string, i int) int {
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	return i
}

func parseNumber(txt string) (Number, error) {
	if strings.Count(txt, ".") > 1 {
		return Number{}, fmt.Errorf("%w: more than one decimal point in %q", domain.ErrMalformedExpression, txt)
	}

	digits := strings.TrimLeft(txt, "+-")
	if digits == "" || digits == "." {
		return Number{}, fmt.Errorf("%w: %q is not a number", domain.ErrMalformedExpression, txt)
	}

	v, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", domain.ErrMalformedExpression, err)
	}

	return Number{Value: v}, nil
}
