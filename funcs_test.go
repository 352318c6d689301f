package calc

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestSuggest(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{"sine", []string{"sin"}},
		{"sqr", []string{"sqrt"}},
		{"lg", []string{"log", "log2"}},
		{"COS", []string{"cos"}},
		{"xyz", nil},
	}
	for _, c := range cases {
		got := suggest(c.name)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("suggestions for %q: want %q, got %q", c.name, c.want, got)
		}
	}
}

func TestFuncNames(t *testing.T) {
	want := []string{"abs", "cos", "cot", "csc", "exp", "ln", "log", "log2", "pow", "sec", "sin", "sqrt", "tan"}
	if got := FuncNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestFactorial(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
		msg  string
	}{
		{0, 1, ""},
		{1, 1, ""},
		{2, 2, ""},
		{5, 120, ""},
		{10, 3628800, ""},
		{5 + 1e-10, 120, ""},
		{5 - 1e-10, 120, ""},
		{-1, 0, "factorial requires a non-negative integer"},
		{2.5, 0, "factorial requires a non-negative integer"},
		{math.NaN(), 0, "factorial requires a non-negative integer"},
		{math.Inf(1), 0, "factorial overflow"},
		{math.Inf(-1), 0, "factorial requires a non-negative integer"},
		{171, 0, "factorial overflow"},
		{1e300, 0, "factorial overflow"},
	}
	for _, c := range cases {
		got, err := factorial(c.x)
		if c.msg != "" {
			if err == nil {
				t.Errorf("%g! gave %g, want error %q", c.x, got, c.msg)
				continue
			}
			if err.Error() != c.msg {
				t.Errorf("%g! gave error %q, want %q", c.x, err, c.msg)
			}
			if !errors.Is(err, ErrDomain) {
				t.Errorf("%g! error %#v is not a domain error", c.x, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%g! gave error %v", c.x, err)
			continue
		}
		if got != c.want {
			t.Errorf("%g! = %g, want %g", c.x, got, c.want)
		}
	}
	r, err := factorial(maxFactorial)
	if err != nil || math.IsInf(r, 0) {
		t.Errorf("%d! gave %g, %v", maxFactorial, r, err)
	}
	if rel := math.Abs(r-math.Gamma(maxFactorial+1)) / r; rel > 1e-12 {
		t.Errorf("%d! = %g, Gamma gives %g", maxFactorial, r, math.Gamma(maxFactorial+1))
	}
}

func TestDomainErrorMessages(t *testing.T) {
	cases := []struct {
		err *DomainError
		msg string
	}{
		{&DomainError{Func: "/"}, "division by zero"},
		{&DomainError{Func: "%"}, "division by zero"},
		{&DomainError{Func: "sqrt", X: -1}, "sqrt domain error"},
		{&DomainError{Func: "log", X: 0}, "log domain error"},
		{&DomainError{Func: "ln", X: -1}, "ln domain error"},
		{&DomainError{Func: "log2", X: 0}, "log2 domain error"},
		{&DomainError{Func: "csc"}, "csc domain error"},
		{&DomainError{Func: "sec"}, "sec domain error"},
		{&DomainError{Func: "cot"}, "cot domain error"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.msg {
			t.Errorf("%+v: want %q, got %q", c.err, c.msg, got)
		}
	}
}

func TestCallArities(t *testing.T) {
	// Every unary kind must be accepted by call1, and every binary kind by
	// call2; each panics on kinds it doesn't know.
	for k := Number + 1; k < kindCount; k++ {
		switch k.Arity() {
		case 1:
			if k == UnaryMinus {
				continue
			}
			call1(k, 1, false)
		case 2:
			call2(k, 1, 1)
		default:
			t.Errorf("%v has arity %d", k, k.Arity())
		}
	}
}

func TestRadians(t *testing.T) {
	if got := radians(180, true); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("180 degrees is %v radians", got)
	}
	if got := radians(180, false); got != 180 {
		t.Errorf("radians mode changed 180 to %v", got)
	}
}
