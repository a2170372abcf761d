// Package calc implements a single-precision calculator for arithmetic
// expressions.
//
// An expression is normalized by discarding every byte that is not a digit,
// decimal point, operator, or bracket, so "3 + 4 * 2" and "3+4*2" are the
// same. The normalized infix expression is converted to postfix notation with
// the shunting-yard algorithm, and the postfix stream is evaluated on a stack
// of float32 values.
//
// The operators, loosest binding first, are + and -; *, / (also written \),
// and % (truncating remainder); ^ (right-associative integer power); and the
// prefix square root |. So "|16/4-2" is "(|16)/4 - 2" and "2^3^2" is
// "2^(3^2)". There is no unary minus.
//
// Evaluation is best-effort: an operation that fails, such as division by
// zero, is reported and skipped, and evaluation goes on with whatever is left
// on the stack.
package calc
