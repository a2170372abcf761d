package calc

import (
	"errors"
	"strconv"
)

// Code is the outcome of an arithmetic primitive. Every Code other than
// Success is an error.
type Code int

const (
	Success Code = iota
	DivideByZero
	SqrtNegative
	UnknownOperator
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Code

// Message is the human-readable description of c shown to users of the
// calculator.
func (c Code) Message() string {
	switch c {
	case Success:
		return "None"
	case DivideByZero:
		return "Cannot divide by zero"
	case SqrtNegative:
		return "Square root of negative number is not supported"
	case UnknownOperator:
		return "Unknown or unsupported operator token"
	default:
		return "Unknown error " + strconv.Itoa(int(c))
	}
}

func (c Code) Error() string {
	switch c {
	case Success:
		return "success"
	case DivideByZero:
		return "division by zero"
	case SqrtNegative:
		return "square root of negative number"
	case UnknownOperator:
		return "unknown operator"
	default:
		return "error code " + strconv.Itoa(int(c))
	}
}

// OpError is a failed arithmetic operation during postfix evaluation. The
// evaluator reports it and continues without pushing a result.
type OpError struct {
	// Op is the operator byte as it appeared in the postfix stream.
	Op byte
	// A and B are the left and right operands. A is zero for |.
	A, B float32
	// Code is the failure kind.
	Code Code
	// Col is the 1-based position of the operator in the postfix stream.
	Col int
}

func (err *OpError) Error() string {
	var s string
	if OpOf(err.Op) == OpRoot {
		s = "|" + fmtf(err.B)
	} else {
		s = fmtf(err.A) + " " + string(err.Op) + " " + fmtf(err.B)
	}
	return s + " resulted in error (" + strconv.Itoa(int(err.Code)) + "): " + err.Code.Message()
}

func (err *OpError) Unwrap() error {
	return err.Code
}

func (err *OpError) Pos() int {
	return err.Col
}

// BracketError is an unmatched bracket in an expression. It is only returned
// with StrictBrackets.
type BracketError struct {
	// Col is the 1-based position of the bracket in the normalized
	// expression.
	Col int
	// Bracket is the unmatched bracket.
	Bracket byte
}

func (err *BracketError) Error() string {
	if err.Bracket == '(' {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// LengthError is an input that exceeds the maximum expression length.
type LengthError struct {
	// Len is the length of the input in bytes.
	Len int
	// Max is the exclusive limit on Len.
	Max int
}

func (err *LengthError) Error() string {
	return "input of " + strconv.Itoa(err.Len) + " bytes is longer than the maximum expression length of " + strconv.Itoa(err.Max-1)
}

func (err *LengthError) Pos() int {
	return err.Max
}

// ComplexityError is an expression which would overflow the postfix buffer or
// a stack.
type ComplexityError struct {
	// What is the name of the overflowing buffer.
	What string
	// Limit is its capacity.
	Limit int
}

func (err *ComplexityError) Error() string {
	return "expression too complex: " + err.What + " exceeds " + strconv.Itoa(err.Limit)
}

var (
	// ErrEmptyExpression is returned for input with no math tokens.
	ErrEmptyExpression = errors.New("no valid expression")
	// ErrEmptyPostfix is returned when an expression has no operands or
	// operators, e.g. "()".
	ErrEmptyPostfix = errors.New("empty postfix expression")
	// ErrNoResult is returned when the value stack is empty after evaluation.
	// That happens when the only operation in an expression fails.
	ErrNoResult = errors.New("no result")
)

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// fmtf formats an operand for messages.
func fmtf(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 1-based byte position associated with the error.
	Pos() int
}

var (
	_ InputError = (*OpError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*LengthError)(nil)
	_ error      = Code(0)
)
