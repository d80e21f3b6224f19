package expr

// Token is either a Number or an Operator.
type Token interface {
	token()
}

type Number struct {
	Value float64
}

type Operator struct {
	Symbol byte
}

func (Number) token()   {}
func (Operator) token() {}

func (n Number) String() string {
	return FormatOperand(n.Value)
}

func (o Operator) String() string {
	return string(o.Symbol)
}

func isOperatorByte(c byte) bool {
	switch c {
	case '+', '-', '*', '/':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
