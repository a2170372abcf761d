package calc

import "math"

// floatDigits is the number of decimal digits that survive a round trip
// through float32.
const floatDigits = 6

// maxRootIter caps Newton's method in Sqrt.
const maxRootIter = 16

// Add returns a + b.
func Add(a, b float32) (float32, error) {
	return a + b, nil
}

// Sub returns a - b.
func Sub(a, b float32) (float32, error) {
	return a - b, nil
}

// Mul returns a * b.
func Mul(a, b float32) (float32, error) {
	return a * b, nil
}

// Div returns a / b. The error is DivideByZero if b is zero.
func Div(a, b float32) (float32, error) {
	if b == 0 {
		return 0, DivideByZero
	}
	return a / b, nil
}

// Mod returns a - b*trunc(a/b). The result has the sign of a, which differs
// from a floored modulus when exactly one operand is negative. The error is
// DivideByZero if b is zero.
func Mod(a, b float32) (float32, error) {
	if b == 0 {
		return 0, DivideByZero
	}
	q := float32(math.Trunc(float64(a / b)))
	return a - b*q, nil
}

// Pow returns a raised to the integer part of b, computed by repeated
// squaring. Fractional exponents are truncated toward zero, so Pow(4, 0.5)
// is 1, not 2. The error is DivideByZero if a is zero and b is negative.
func Pow(a, b float32) (float32, error) {
	if a == 0 && b < 0 {
		return 0, DivideByZero
	}
	if b == 0 {
		return 1, nil
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return float32(math.NaN()), nil
	}
	e := b
	if e < 0 {
		e = -e
	}
	var n uint64
	if e >= 1<<63 {
		// Every float32 this large is even.
		n = 1 << 63
	} else {
		n = uint64(e)
	}
	r := float32(1)
	for x := a; n > 0; n >>= 1 {
		if n&1 != 0 {
			r *= x
		}
		x *= x
	}
	if b < 0 {
		return 1 / r, nil
	}
	return r, nil
}

// Sqrt approximates the square root of x by Newton's method, starting from x
// itself and stopping after 16 steps or once successive approximations agree
// to within 10^-6. The error is SqrtNegative if x is negative.
func Sqrt(x float32) (float32, error) {
	if x < 0 {
		return 0, SqrtNegative
	}
	if x == 0 {
		return 0, nil
	}
	eps, _ := Pow(10, -floatDigits)
	cur := x
	for i := 0; i < maxRootIter; i++ {
		next := 0.5 * (cur + x/cur)
		if cur-next < eps && next-cur < eps {
			break
		}
		cur = next
	}
	return cur, nil
}

// Apply applies an operator to operands. b is the right operand, or the only
// operand for OpRoot, in which case a is ignored. Brackets are not operators
// and give UnknownOperator.
func Apply(op Op, a, b float32) (float32, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSub:
		return Sub(a, b)
	case OpMul:
		return Mul(a, b)
	case OpDiv:
		return Div(a, b)
	case OpMod:
		return Mod(a, b)
	case OpPow:
		return Pow(a, b)
	case OpRoot:
		return Sqrt(b)
	case opNone, OpOpen, OpClose:
		return 0, UnknownOperator
	default:
		panic("calc: invalid operator " + op.String())
	}
}
