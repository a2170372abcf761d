package calc

import (
	"io"
	"log"
	"strconv"
)

const (
	// MaxExpressionLength is the default limit on input length. Inputs must
	// be strictly shorter.
	MaxExpressionLength = 1024
	// MaxStackDepth is the default capacity of the operator and value stacks.
	MaxStackDepth = 2 * MaxExpressionLength
)

// maxNumberLen is the longest run of digits treated as a single number.
// Longer runs are split.
const maxNumberLen = 32

// Calculator evaluates expressions under a fixed configuration. A Calculator
// holds no state between evaluations, so it is safe for concurrent use.
type Calculator struct {
	maxLen   int
	maxDepth int
	strict   bool
	trace    *log.Logger
	diag     *log.Logger
}

// Option configures a Calculator.
type Option interface {
	calcOption()
}

type (
	maxlenopt int
	depthopt  int
	strictopt struct{}
	traceopt  struct{ w io.Writer }
	diagopt   struct{ w io.Writer }
)

func (maxlenopt) calcOption() {}
func (depthopt) calcOption()  {}
func (strictopt) calcOption() {}
func (traceopt) calcOption()  {}
func (diagopt) calcOption()   {}

// MaxLength sets the exclusive limit on input length. Normalized expressions
// and postfix streams are limited to n-1 bytes.
func MaxLength(n int) Option {
	return maxlenopt(n)
}

// MaxDepth sets the capacity of the operator and value stacks.
func MaxDepth(n int) Option {
	return depthopt(n)
}

// StrictBrackets makes unmatched brackets an error instead of ignoring them.
func StrictBrackets() Option {
	return strictopt{}
}

// Trace sets a destination for progress messages: the normalized input, the
// postfix stream, and each arithmetic operation performed. A nil writer
// disables tracing, which is the default.
func Trace(w io.Writer) Option {
	return traceopt{w}
}

// Diagnostics sets a destination for reports of failed operations. A nil
// writer disables them, which is the default.
func Diagnostics(w io.Writer) Option {
	return diagopt{w}
}

// New creates a calculator. Options are applied in order.
func New(opts ...Option) *Calculator {
	c := Calculator{
		maxLen:   MaxExpressionLength,
		maxDepth: MaxStackDepth,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case maxlenopt:
			if opt < 2 {
				panic("calc: maximum length " + strconv.Itoa(int(opt)) + " leaves no room for an expression")
			}
			c.maxLen = int(opt)
		case depthopt:
			if opt < 1 {
				panic("calc: stack depth " + strconv.Itoa(int(opt)) + " must be positive")
			}
			c.maxDepth = int(opt)
		case strictopt:
			c.strict = true
		case traceopt:
			c.trace = logger(opt.w)
		case diagopt:
			c.diag = logger(opt.w)
		default:
			panic("calc: unknown option type")
		}
	}
	return &c
}

func logger(w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, "", 0)
}

// MaxLength returns the exclusive limit on input length.
func (c *Calculator) MaxLength() int {
	return c.maxLen
}

func (c *Calculator) tracef(format string, v ...interface{}) {
	if c.trace != nil {
		c.trace.Printf(format, v...)
	}
}

func (c *Calculator) report(err error) {
	if c.diag != nil {
		c.diag.Print(err)
	}
}

// std is the calculator used by package-level functions.
var std = New()
