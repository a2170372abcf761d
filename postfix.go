package calc

import "strings"

// pending is an operator or open bracket waiting on the operator stack.
type pending struct {
	op Op
	// col is the 1-based position of the token in the infix expression.
	col int
}

// postfixWriter accumulates a postfix stream, failing rather than exceeding
// its limit.
type postfixWriter struct {
	b     strings.Builder
	limit int
}

// emit writes a token followed by a separator.
func (w *postfixWriter) emit(tok string) error {
	if w.b.Len()+len(tok)+1 > w.limit {
		return &ComplexityError{What: "postfix stream", Limit: w.limit}
	}
	w.b.WriteString(tok)
	w.b.WriteByte(Separator)
	return nil
}

func (w *postfixWriter) emitOp(op Op) error {
	return w.emit(string(op.Byte()))
}

// ToPostfix converts a normalized infix expression to postfix notation using
// the shunting-yard algorithm. Each number and operator in the output is
// followed by exactly one space. Runs of more than 32 digits are split into
// several numbers.
//
// Unless the calculator uses StrictBrackets, a close bracket with no matching
// open bracket empties the operator stack into the output, and an open
// bracket that is never closed is dropped. Bytes that are not math tokens are
// ignored. If the output would exceed MaxLength()-1 bytes, or the operator
// stack would exceed its depth, the result is a *ComplexityError.
func (c *Calculator) ToPostfix(expr string) (string, error) {
	ops := newStack[pending]("operator stack", c.maxDepth)
	out := postfixWriter{limit: c.maxLen - 1}
	for i := 0; i < len(expr); {
		switch Classify(expr[i]) {
		case TokenNumber:
			j := i
			for j < len(expr) && j-i < maxNumberLen && IsDigit(expr[j]) {
				j++
			}
			if err := out.emit(expr[i:j]); err != nil {
				return "", err
			}
			i = j
			continue
		case TokenOpen:
			if err := ops.push(pending{op: OpOpen, col: i + 1}); err != nil {
				return "", err
			}
		case TokenClose:
			if err := c.closeGroup(ops, &out, i+1); err != nil {
				return "", err
			}
		case TokenOperator:
			op := OpOf(expr[i])
			for {
				top, ok := ops.peek()
				if !ok || !top.op.yields(op) {
					break
				}
				ops.pop()
				if err := out.emitOp(top.op); err != nil {
					return "", err
				}
			}
			if err := ops.push(pending{op: op, col: i + 1}); err != nil {
				return "", err
			}
		case TokenSpace, TokenInvalid:
			// Not part of a normalized expression.
		default:
			panic("calc: unknown token kind " + Classify(expr[i]).String())
		}
		i++
	}
	for {
		top, ok := ops.pop()
		if !ok {
			break
		}
		if top.op == OpOpen {
			if c.strict {
				return "", &BracketError{Col: top.col, Bracket: '('}
			}
			continue
		}
		if err := out.emitOp(top.op); err != nil {
			return "", err
		}
	}
	return out.b.String(), nil
}

// closeGroup pops operators into the output up to and including the nearest
// open bracket. col is the position of the close bracket.
func (c *Calculator) closeGroup(ops *stack[pending], out *postfixWriter, col int) error {
	for {
		top, ok := ops.pop()
		if !ok {
			if c.strict {
				return &BracketError{Col: col, Bracket: ')'}
			}
			return nil
		}
		if top.op == OpOpen {
			return nil
		}
		if err := out.emitOp(top.op); err != nil {
			return err
		}
	}
}

// ToPostfix converts an infix expression to postfix with the default limits.
func ToPostfix(expr string) (string, error) {
	return std.ToPostfix(expr)
}
