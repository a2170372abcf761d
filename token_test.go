package calc

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		c    byte
		kind TokenKind
	}{
		{'0', TokenNumber},
		{'5', TokenNumber},
		{'9', TokenNumber},
		{'.', TokenNumber},
		{'+', TokenOperator},
		{'-', TokenOperator},
		{'*', TokenOperator},
		{'/', TokenOperator},
		{'\\', TokenOperator},
		{'%', TokenOperator},
		{'^', TokenOperator},
		{'|', TokenOperator},
		{'(', TokenOpen},
		{')', TokenClose},
		{' ', TokenSpace},
		{'\t', TokenInvalid},
		{',', TokenInvalid},
		{'x', TokenInvalid},
		{'[', TokenInvalid},
		{0, TokenInvalid},
		{0xff, TokenInvalid},
	}
	for _, c := range cases {
		if got := Classify(c.c); got != c.kind {
			t.Errorf("%q: want %v, got %v", c.c, c.kind, got)
		}
	}
}

func TestMathTokensAreExactlyTheAlphabet(t *testing.T) {
	const alphabet = "0123456789." + Operators + "()"
	for i := 0; i < 256; i++ {
		c := byte(i)
		want := strings.IndexByte(alphabet, c) >= 0
		if got := IsMathToken(c); got != want {
			t.Errorf("IsMathToken(%q): want %t, got %t", c, want, got)
		}
	}
}

func TestOpPrecsExist(t *testing.T) {
	for i := 0; i < len(Operators); i++ {
		c := Operators[i]
		if Precedence(c) == 0 {
			t.Errorf("no precedence for %c", c)
		}
		if !IsOperator(c) {
			t.Errorf("%c is not an operator", c)
		}
		if OpOf(c).Arity() == 0 {
			t.Errorf("%c has no operands", c)
		}
	}
}

func TestPrecedence(t *testing.T) {
	cases := []struct {
		c     byte
		prec  int
		right bool
	}{
		{'+', 1, false},
		{'-', 1, false},
		{'*', 2, false},
		{'/', 2, false},
		{'\\', 2, false},
		{'%', 2, false},
		{'^', 3, true},
		{'|', 4, false},
		{'(', 0, false},
		{')', 0, false},
		{'1', 0, false},
		{'x', 0, false},
	}
	for _, c := range cases {
		if got := Precedence(c.c); got != c.prec {
			t.Errorf("Precedence(%q): want %d, got %d", c.c, c.prec, got)
		}
		if got := IsRightAssociative(c.c); got != c.right {
			t.Errorf("IsRightAssociative(%q): want %t, got %t", c.c, c.right, got)
		}
	}
}

func TestOpBytes(t *testing.T) {
	for _, op := range []Op{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpRoot, OpOpen, OpClose} {
		if got := OpOf(op.Byte()); got != op {
			t.Errorf("%v: round trip through %q gave %v", op, op.Byte(), got)
		}
	}
	if OpOf('\\').Byte() != '/' {
		t.Errorf(`\ should be written as /, not %q`, OpOf('\\').Byte())
	}
	if OpOf('x') != opNone {
		t.Errorf("x is %v", OpOf('x'))
	}
}

func TestYields(t *testing.T) {
	cases := []struct {
		top, cur Op
		want     bool
	}{
		{OpMul, OpAdd, true},
		{OpAdd, OpMul, false},
		{OpAdd, OpSub, true},
		{OpDiv, OpMod, true},
		{OpPow, OpPow, false},
		{OpRoot, OpPow, true},
		{OpPow, OpRoot, false},
		{OpRoot, OpRoot, true},
		{OpOpen, OpAdd, false},
		{OpOpen, OpRoot, false},
	}
	for _, c := range cases {
		if got := c.top.yields(c.cur); got != c.want {
			t.Errorf("%v yields to %v: want %t, got %t", c.top, c.cur, c.want, got)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	if s := TokenOperator.String(); s != "Operator" {
		t.Errorf("wrong name %q", s)
	}
	if s := TokenKind(99).String(); s != "TokenKind(99)" {
		t.Errorf("wrong name %q", s)
	}
}
