package calc

import "strings"

// Result is the outcome of evaluating an expression, along with the
// intermediate forms it passed through.
type Result struct {
	// Input is the raw text that was evaluated.
	Input string
	// Normalized is Input with everything but math tokens removed.
	Normalized string
	// Postfix is the postfix stream evaluated to obtain Value.
	Postfix string
	// Value is the result of evaluation.
	Value float32
	// Faults are the operations that failed and were skipped. If there are
	// any, Value is probably not what the expression intended.
	Faults []*OpError
}

// Err returns the first fault in r, or nil if there are none.
func (r *Result) Err() error {
	if len(r.Faults) == 0 {
		return nil
	}
	return r.Faults[0]
}

// Eval normalizes src, converts it to postfix, and evaluates it.
//
// Inputs of MaxLength() bytes or more are rejected with a *LengthError.
// Inputs with no math tokens give ErrEmptyExpression, and those which produce
// no postfix tokens, such as "()", give ErrEmptyPostfix. Conversion errors
// are returned as-is. In each of those cases the result is nil.
//
// Failed operations do not cause an error; see EvalPostfix. If no value
// remains after evaluation, the result holds the faults and the error is
// ErrNoResult.
func (c *Calculator) Eval(src string) (*Result, error) {
	if len(src) >= c.maxLen {
		return nil, &LengthError{Len: len(src), Max: c.maxLen}
	}
	r := Result{Input: src, Normalized: c.Normalize(src)}
	if r.Normalized == "" {
		return nil, ErrEmptyExpression
	}
	c.tracef("Input normalized to: %s", r.Normalized)
	p, err := c.ToPostfix(r.Normalized)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, ErrEmptyPostfix
	}
	r.Postfix = p
	c.tracef("Postfix shunting yard: %s", strings.TrimSuffix(r.Postfix, " "))
	r.Value, r.Faults, err = c.EvalPostfix(r.Postfix)
	return &r, err
}

// EvalString is a shortcut to evaluate an expression with a new Calculator.
// Failed operations are not errors; use a Calculator with Diagnostics, or
// Result.Err, to learn about them.
func EvalString(src string, opts ...Option) (float32, error) {
	r, err := New(opts...).Eval(src)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}
