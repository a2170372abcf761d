package calc

// TokenKind is the classification of a single byte of input.
type TokenKind int

const (
	// TokenInvalid is any byte that is not part of a math expression.
	TokenInvalid TokenKind = iota
	// TokenNumber is a decimal digit or a decimal point.
	TokenNumber
	// TokenOperator is one of Operators.
	TokenOperator
	// TokenOpen is an open bracket.
	TokenOpen
	// TokenClose is a close bracket.
	TokenClose
	// TokenSpace is the separator between postfix tokens.
	TokenSpace
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Operators contains the bytes which are considered to be operators. Both /
// and \ are division. | is the unary square root.
const Operators = `+-*/\%^|`

// Separator delimits tokens in a postfix stream.
const Separator = ' '

// Classify gives the kind of a single byte.
func Classify(c byte) TokenKind {
	switch {
	case IsDigit(c):
		return TokenNumber
	case IsOperator(c):
		return TokenOperator
	case c == '(':
		return TokenOpen
	case c == ')':
		return TokenClose
	case c == Separator:
		return TokenSpace
	default:
		return TokenInvalid
	}
}

// IsDigit returns whether c may be part of a number, i.e. whether it is a
// decimal digit or a decimal point.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}

// IsOperator returns whether c is one of Operators.
func IsOperator(c byte) bool {
	return OpOf(c).Prec() > 0
}

// IsOpenBracket returns whether c is (.
func IsOpenBracket(c byte) bool {
	return c == '('
}

// IsCloseBracket returns whether c is ).
func IsCloseBracket(c byte) bool {
	return c == ')'
}

// IsBracket returns whether c is either bracket.
func IsBracket(c byte) bool {
	return IsOpenBracket(c) || IsCloseBracket(c)
}

// IsMathToken returns whether c survives normalization.
func IsMathToken(c byte) bool {
	return IsDigit(c) || IsOperator(c) || IsBracket(c)
}

// Precedence returns the binding rank of an operator byte, from 1 for + and -
// up to 4 for |. Any other byte has precedence 0.
func Precedence(c byte) int {
	return OpOf(c).Prec()
}

// IsRightAssociative returns whether an operator byte groups right to left.
// Only ^ does.
func IsRightAssociative(c byte) bool {
	return OpOf(c).RightAssoc()
}

// Op is an operator or bracket.
type Op uint8

const (
	opNone Op = iota

	OpAdd  // a + b
	OpSub  // a - b
	OpMul  // a * b
	OpDiv  // a / b or a \ b
	OpMod  // a % b
	OpPow  // a ^ b
	OpRoot // |b
	OpOpen
	OpClose
)

// OpOf gets the operator or bracket for a byte. If c is neither, the result
// is the zero Op.
func OpOf(c byte) Op {
	switch c {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/', '\\':
		return OpDiv
	case '%':
		return OpMod
	case '^':
		return OpPow
	case '|':
		return OpRoot
	case '(':
		return OpOpen
	case ')':
		return OpClose
	default:
		return opNone
	}
}

// Byte returns the byte written for op in postfix output. Division is always
// written as /.
func (op Op) Byte() byte {
	switch op {
	case OpAdd:
		return '+'
	case OpSub:
		return '-'
	case OpMul:
		return '*'
	case OpDiv:
		return '/'
	case OpMod:
		return '%'
	case OpPow:
		return '^'
	case OpRoot:
		return '|'
	case OpOpen:
		return '('
	case OpClose:
		return ')'
	default:
		return 0
	}
}

func (op Op) String() string {
	if op == opNone {
		return "none"
	}
	return string(op.Byte())
}

// Prec is the precedence of op. Lower binds less tightly. Brackets have no
// precedence.
func (op Op) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv, OpMod:
		return 2
	case OpPow:
		return 3
	case OpRoot:
		return 4
	default:
		return 0
	}
}

// RightAssoc indicates right-associativity.
func (op Op) RightAssoc() bool {
	return op == OpPow
}

// Arity is the number of operands op consumes during evaluation.
func (op Op) Arity() int {
	switch op {
	case OpRoot:
		return 1
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		return 2
	default:
		return 0
	}
}

// name is the name of the arithmetic primitive for op, used in trace output.
func (op Op) name() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpMod:
		return "modulo"
	case OpPow:
		return "power"
	case OpRoot:
		return "sqrt"
	default:
		return "op(" + op.String() + ")"
	}
}

// yields reports whether op, an operator already on the stack, must be
// emitted before cur is pushed.
func (op Op) yields(cur Op) bool {
	tp, cp := op.Prec(), cur.Prec()
	if tp != cp {
		return tp > cp
	}
	return !cur.RightAssoc()
}
