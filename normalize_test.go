package calc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"spaces", " \t \r\n ", ""},
		{"letters", "abc", ""},
		{"num", "12", "12"},
		{"expr", "3 + 4 * 2", "3+4*2"},
		{"commas", "1,000 + 2", "1000+2"},
		{"example", "(3^2 + 5) * |16/4 - 2", "(3^2+5)*|16/4-2"},
		{"alt-div", `6 \ 2`, `6\2`},
		{"all", "0123456789.+-*/\\%^|()", "0123456789.+-*/\\%^|()"},
		{"other-brackets", "[1]{2}", "12"},
		{"unicode", "3×4÷2", "342"},
		{"newline", "1+1\n", "1+1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calc.Normalize(c.src)
			if got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
			if again := calc.Normalize(got); again != got {
				t.Errorf("normalizing %q again gave %q", got, again)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	long := strings.Repeat("1", 2000)
	if got := calc.Normalize(long); len(got) != calc.MaxExpressionLength-1 {
		t.Errorf("normalized %d bytes to %d, want %d", len(long), len(got), calc.MaxExpressionLength-1)
	}
	// The limit applies to bytes examined, not bytes kept.
	padded := strings.Repeat("x", calc.MaxExpressionLength-4) + "123456"
	if got := calc.Normalize(padded); got != "123" {
		t.Errorf("want %q, got %q", "123", got)
	}
	c := calc.New(calc.MaxLength(8))
	if got := c.Normalize("1 2 3 4 5"); got != "1234" {
		t.Errorf("with max length 8: want %q, got %q", "1234", got)
	}
}
