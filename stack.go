package calc

// stack is a bounded LIFO. Operators and values each get their own, fresh for
// every conversion or evaluation.
type stack[E any] struct {
	data []E
	what string
}

func newStack[E any](what string, depth int) *stack[E] {
	return &stack[E]{data: make([]E, 0, depth), what: what}
}

// push adds v to the top of the stack. If the stack is full, it is unchanged
// and the result is a *ComplexityError.
func (s *stack[E]) push(v E) error {
	if len(s.data) == cap(s.data) {
		return &ComplexityError{What: s.what, Limit: cap(s.data)}
	}
	s.data = append(s.data, v)
	return nil
}

// pop removes and returns the top of the stack. ok is false if the stack was
// empty.
func (s *stack[E]) pop() (v E, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	v = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, true
}

// peek returns the top of the stack without removing it.
func (s *stack[E]) peek() (v E, ok bool) {
	if len(s.data) == 0 {
		return v, false
	}
	return s.data[len(s.data)-1], true
}

func (s *stack[E]) empty() bool {
	return len(s.data) == 0
}

func (s *stack[E]) len() int {
	return len(s.data)
}
