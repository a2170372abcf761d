package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

const prompt = "Enter equation: "

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program. The result is the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		inname, verb          string
		quiet, strict, banner bool
		maxlen                int
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "%f", "result formatting verb")
	fs.BoolVar(&quiet, "q", false, "print only results")
	fs.BoolVar(&strict, "strict", false, "report unmatched brackets instead of ignoring them")
	fs.IntVar(&maxlen, "max", calc.MaxExpressionLength, "maximum expression length in bytes, exclusive")
	fs.BoolVar(&banner, "banner", false, "print the operator summary first (always on for terminals)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := log.New(stderr, "", 0)
	if maxlen < 2 {
		logger.Printf("maximum length (%d) must be at least 2", maxlen)
		return 2
	}

	in, err := infile(inname, stdin, fs.NArg() == 0)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if c, ok := in.(io.Closer); ok && in != stdin {
		defer c.Close()
	}

	a := app{verb: verb, quiet: quiet, out: stdout, log: logger}
	width := 80
	var lines lineReader
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
			width = w
		}
		old, err := term.MakeRaw(fd)
		if err != nil {
			logger.Print(err)
			return 1
		}
		defer term.Restore(fd, old)
		// Raw mode needs \r\n line endings, which Terminal provides.
		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{f, stdout}, prompt)
		lines = t
		a.out = t
		a.log = log.New(t, "", 0)
		banner = true
	} else if in != nil {
		lines = &bufLines{r: bufio.NewReader(in)}
	}

	opts := []calc.Option{calc.MaxLength(maxlen), calc.Diagnostics(a.log.Writer())}
	if strict {
		opts = append(opts, calc.StrictBrackets())
	}
	if !quiet {
		opts = append(opts, calc.Trace(a.out))
	}
	a.calc = calc.New(opts...)

	if banner {
		printHelp(a.out, width-1)
	}
	for _, arg := range fs.Args() {
		a.evaluate(arg)
	}
	if lines == nil {
		return 0
	}
	n := 0
	for {
		line, err := lines.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.log.Print(err)
			}
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++
		a.evaluate(line)
	}
	if n == 0 && fs.NArg() == 0 {
		a.log.Print("no valid input")
		return 1
	}
	return 0
}

// app evaluates expressions and prints their results.
type app struct {
	calc  *calc.Calculator
	verb  string
	quiet bool
	out   io.Writer
	log   *log.Logger
}

func (a *app) evaluate(src string) {
	r, err := a.calc.Eval(src)
	switch {
	case errors.Is(err, calc.ErrNoResult):
		a.log.Printf("%q: no result, every operation failed", src)
	case err != nil:
		a.log.Printf("%q: %v", src, err)
	case a.quiet:
		fmt.Fprintf(a.out, a.verb+"\n", r.Value)
	default:
		fmt.Fprintf(a.out, "\nResult: "+a.verb+"\n\n", r.Value)
	}
}

type lineReader interface {
	ReadLine() (string, error)
}

// bufLines reads lines from a non-terminal input.
type bufLines struct {
	r *bufio.Reader
}

func (b *bufLines) ReadLine() (string, error) {
	s, err := b.r.ReadString('\n')
	if err != nil && (s == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// infile opens the input named by the -in flag. With no name, the input is
// std if useStd is set and nil otherwise.
func infile(inname string, std io.Reader, useStd bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", useStd:
		return std, nil
	default:
		return nil, nil
	}
}

func printHelp(w io.Writer, width int) {
	rule := strings.Repeat("=", width)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\tSimple calculator")
	fmt.Fprintln(w, "\t\tAvailable operators are:")
	for _, op := range []struct{ c, desc string }{
		{"+", "Add (a + b)"},
		{"-", "Subtract (a - b)"},
		{"*", "Multiply (a * b)"},
		{"/", "Divide (a / b)"},
		{`\`, `Divide (a \ b)`},
		{"%", "Modulo (a % b)"},
		{"^", "Power of (a ^ b)"},
		{"|", "Square root of (|a)"},
		{"(", "Start group"},
		{")", "End group"},
	} {
		fmt.Fprintf(w, "\t\t\t%s        - %s\n", op.c, op.desc)
	}
	fmt.Fprintln(w, "\t\tExample:")
	fmt.Fprintln(w, "\t\t\t(3^2 + 5) * |16/4 - 2")
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}
