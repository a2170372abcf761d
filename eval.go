package calc

import (
	"errors"
	"strconv"
)

// EvalPostfix evaluates a postfix stream as produced by ToPostfix. The result
// is the value on top of the stack once the stream is exhausted.
//
// A failed operation, e.g. division by zero, does not stop evaluation. It is
// reported to the calculator's diagnostics, appended to faults, and leaves
// nothing on the stack, so later operators may consume fewer operands than
// the expression intended. An operator that finds the stack empty uses zero
// for each missing operand. Bytes that are neither numbers, operators, nor
// separators are reported as UnknownOperator faults and skipped.
//
// If the stack is empty at the end, e.g. because the only operation failed,
// err is ErrNoResult. If the stack would exceed its depth, err is a
// *ComplexityError and evaluation stops.
func (c *Calculator) EvalPostfix(postfix string) (r float32, faults []*OpError, err error) {
	vals := newStack[float32]("value stack", c.maxDepth)
	for i := 0; i < len(postfix); {
		switch Classify(postfix[i]) {
		case TokenSpace:
			i++
		case TokenNumber:
			j := i
			for j < len(postfix) && j-i < maxNumberLen && IsDigit(postfix[j]) {
				j++
			}
			if err := vals.push(parseNumber(postfix[i:j])); err != nil {
				return 0, faults, err
			}
			i = j
		case TokenOperator, TokenOpen, TokenClose, TokenInvalid:
			f, err := c.execute(vals, postfix[i], i+1)
			if err != nil {
				return 0, faults, err
			}
			if f != nil {
				faults = append(faults, f)
			}
			i++
		default:
			panic("calc: unknown token kind " + Classify(postfix[i]).String())
		}
	}
	r, ok := vals.pop()
	if !ok {
		return 0, faults, ErrNoResult
	}
	return r, faults, nil
}

// execute applies the operator ch to the top of the stack. If the operation
// fails, the result is the reported fault. col is the position of ch.
func (c *Calculator) execute(vals *stack[float32], ch byte, col int) (*OpError, error) {
	op := OpOf(ch)
	var a, b float32
	switch op.Arity() {
	case 2:
		b, _ = vals.pop()
		a, _ = vals.pop()
	case 1:
		b, _ = vals.pop()
	}
	r, err := Apply(op, a, b)
	if err != nil {
		var code Code
		if !errors.As(err, &code) {
			panic("calc: arithmetic returned unexpected error: " + err.Error())
		}
		f := &OpError{Op: ch, A: a, B: b, Code: code, Col: col}
		c.report(f)
		return f, nil
	}
	if op.Arity() == 1 {
		c.tracef("%s(%g) -> %g", op.name(), b, r)
	} else {
		c.tracef("%s(%g, %g) -> %g", op.name(), a, b, r)
	}
	return nil, vals.push(r)
}

// parseNumber converts a run of digits and decimal points to a float32 the
// way C's strtof would: the longest prefix of the form digits.digits is the
// number, and a run without digits is zero.
func parseNumber(s string) float32 {
	end, dot, digits := 0, false, false
scan:
	for ; end < len(s); end++ {
		switch c := s[end]; {
		case '0' <= c && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			break scan
		}
	}
	if !digits {
		return 0
	}
	// Out of range literals parse to ±Inf along with ErrRange, which is what
	// we want.
	f, _ := strconv.ParseFloat(s[:end], 32)
	return float32(f)
}

// EvalPostfix evaluates a postfix stream with the default limits.
func EvalPostfix(postfix string) (float32, []*OpError, error) {
	return std.EvalPostfix(postfix)
}
