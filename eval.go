package calc

import (
	"io"
	"strings"
)

// machine holds the value stack for one evaluation.
type machine struct {
	stack []float64
	cap   int
}

// push pushes a value to the stack.
func (m *machine) push(v float64) error {
	if len(m.stack) >= m.cap {
		return &CapacityError{Cap: m.cap}
	}
	m.stack = append(m.stack, v)
	return nil
}

// pop removes the top from the stack and returns it.
func (m *machine) pop() float64 {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (m *machine) top() *float64 {
	return &m.stack[len(m.stack)-1]
}

// Eval evaluates the expression. If degrees is true, trigonometric functions
// take their arguments in degrees; otherwise, in radians.
func (e *Expr) Eval(degrees bool) (float64, error) {
	return eval(e.toks, e.cap, degrees)
}

// eval runs a postfix sequence. The sequence is checked for stack integrity
// as it runs, so it need not have come from Parse.
func eval(toks []Token, cap int, degrees bool) (float64, error) {
	n := len(toks)
	if n > cap {
		n = cap
	}
	m := machine{stack: make([]float64, 0, n), cap: cap}
	for _, t := range toks {
		switch {
		case t.Kind == Number:
			if err := m.push(t.Value); err != nil {
				return 0, err
			}
		case t.Kind == UnaryMinus:
			if len(m.stack) < 1 {
				return 0, ErrInvalidExpression
			}
			v := m.top()
			*v = -*v
		case t.Kind.Arity() == 1:
			if len(m.stack) < 1 {
				return 0, ErrInvalidExpression
			}
			v := m.top()
			r, err := call1(t.Kind, *v, degrees)
			if err != nil {
				return 0, err
			}
			*v = r
		case t.Kind.Arity() == 2:
			if len(m.stack) < 2 {
				return 0, ErrInvalidExpression
			}
			b := m.pop()
			v := m.top()
			r, err := call2(t.Kind, *v, b)
			if err != nil {
				return 0, err
			}
			*v = r
		default:
			return 0, ErrInvalidExpression
		}
	}
	if len(m.stack) != 1 {
		return 0, ErrInvalidExpression
	}
	return m.stack[0], nil
}

// EvalTokens evaluates a postfix token sequence directly, using the default
// capacity for the value stack.
func EvalTokens(toks []Token, degrees bool) (float64, error) {
	return eval(toks, DefaultCapacity, degrees)
}

// EvalReader is a shortcut to parse an expression and return its result.
func EvalReader(src io.RuneScanner, degrees bool, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval(degrees)
}

// Evaluate is a shortcut to parse and evaluate a string expression.
func Evaluate(src string, degrees bool, opts ...ParseOption) (float64, error) {
	return EvalReader(strings.NewReader(src), degrees, opts...)
}
