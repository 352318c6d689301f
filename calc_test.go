package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		deg   bool
		want  float64
		exact string
		at    int
	}{
		{"exact", "cos(45)", true, math.Sqrt2 / 2, "sqrt(2)/2", 45},
		{"exact-neg", "sin(-150)", true, -0.5, "-1/2", 210},
		{"radians", "cos(45)", false, math.Cos(45), "", 0},
		{"inexact-angle", "sin(37)", true, math.Sin(37 * math.Pi / 180), "", 0},
		{"not-a-call", "2*sin(30)", true, 1, "", 0},
		{"arith", "1+2*3", true, 7, "", 0},
		{"tan-radians", "tan(90)", false, math.Tan(90), "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Calculate(c.src, c.deg)
			if err != nil {
				t.Fatalf("%q failed: %v", c.src, err)
			}
			if !near(r.Value, c.want) {
				t.Errorf("%q: want %.17g, got %.17g", c.src, c.want, r.Value)
			}
			if r.Exact != (c.exact != "") {
				t.Errorf("%q: exact is %t", c.src, r.Exact)
			}
			if r.Symbolic != c.exact || r.Degree != c.at {
				t.Errorf("%q: want %q at %d, got %q at %d", c.src, c.exact, c.at, r.Symbolic, r.Degree)
			}
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		deg  bool
		msg  string
	}{
		{"pole", "tan(90)", true, "tan undefined"},
		{"pole-csc", "csc(-360)", true, "csc undefined"},
		{"div", "1/0", true, "division by zero"},
		{"name", "sin(x)", true, "unknown function: x"},
		{"syntax", "sin(30", true, "mismatched parentheses"},
		{"empty", "", false, "invalid expression"},
		{"pow-neg", "2^-2", false, "invalid expression"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Calculate(c.src, c.deg)
			if err == nil {
				t.Fatalf("%q gave %+v", c.src, r)
			}
			if err.Error() != c.msg {
				t.Errorf("%q: want %q, got %q", c.src, c.msg, err.Error())
			}
			if r != (calc.Result{}) {
				t.Errorf("%q: error with result %+v", c.src, r)
			}
		})
	}
}

func TestCalculateCapacity(t *testing.T) {
	_, err := calc.Calculate("1+1+1+1+1", false, calc.Capacity(4))
	var ce *calc.CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("want *CapacityError, got %#v", err)
	}
	r, err := calc.Calculate("cos(60)", true, calc.Capacity(1))
	if err != nil {
		t.Fatalf("symbolic forms should not need capacity: %v", err)
	}
	if r.Symbolic != "1/2" {
		t.Errorf("cos(60) gave %+v", r)
	}
}
