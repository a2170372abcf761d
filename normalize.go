package calc

import "strings"

// Normalize removes every byte of src that is not a math token, keeping the
// rest in order. At most MaxLength()-1 bytes of src are examined; anything
// beyond that is dropped even if the kept bytes would fit. The result of
// normalizing a normalized expression is the same expression.
func (c *Calculator) Normalize(src string) string {
	n := len(src)
	if n > c.maxLen-1 {
		n = c.maxLen - 1
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		if IsMathToken(src[i]) {
			b.WriteByte(src[i])
		}
	}
	return b.String()
}

// Normalize normalizes src with the default limits.
func Normalize(src string) string {
	return std.Normalize(src)
}
