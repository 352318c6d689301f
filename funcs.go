package calc

import (
	"errors"
	"math"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// funcs maps function names to their kinds.
var funcs = map[string]Kind{
	"sin":  FnSin,
	"cos":  FnCos,
	"tan":  FnTan,
	"sqrt": FnSqrt,
	"log":  FnLog10,
	"ln":   FnLn,
	"log2": FnLog2,
	"abs":  FnAbs,
	"exp":  FnExp,
	"pow":  FnPow,
	"csc":  FnCsc,
	"sec":  FnSec,
	"cot":  FnCot,
}

// FuncNames returns the names of all functions in sorted order.
func FuncNames() []string {
	r := make([]string, 0, len(funcs))
	for k := range funcs {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// suggest finds function names resembling name, closest first. A name is a
// candidate if either it or name is a subsequence of the other.
func suggest(name string) []string {
	type cand struct {
		name string
		dist int
	}
	var c []cand
	for _, fn := range FuncNames() {
		if fuzzy.MatchFold(name, fn) || fuzzy.MatchFold(fn, name) {
			c = append(c, cand{fn, fuzzy.LevenshteinDistance(name, fn)})
		}
	}
	if len(c) == 0 {
		return nil
	}
	sort.SliceStable(c, func(i, j int) bool { return c[i].dist < c[j].dist })
	r := make([]string, len(c))
	for i, x := range c {
		r[i] = x.name
	}
	return r
}

// ErrDomain is matched by errors.Is for every DomainError.
var ErrDomain = errors.New("domain error")

// DomainError is an error returned when an operator or function is evaluated
// on arguments outside its domain.
type DomainError struct {
	// Func is the operator or function name, e.g. "/", "!", or "sqrt".
	Func string
	// X is the out-of-domain argument.
	X float64
}

func (err *DomainError) Error() string {
	switch err.Func {
	case "/", "%":
		return "division by zero"
	case "!":
		if math.IsInf(err.X, 1) || err.X >= 0 && isInteger(err.X) {
			return "factorial overflow"
		}
		return "factorial requires a non-negative integer"
	default:
		return err.Func + " domain error"
	}
}

// Is returns whether target is ErrDomain.
func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// maxFactorial is the largest n for which n! is finite in float64.
const maxFactorial = 170

// isInteger reports whether x is within 1e-9 of an integer.
func isInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) <= 1e-9
}

func factorial(x float64) (float64, error) {
	if math.IsInf(x, 1) {
		return 0, &DomainError{Func: "!", X: x}
	}
	if x < 0 || math.IsNaN(x) || !isInteger(x) {
		return 0, &DomainError{Func: "!", X: x}
	}
	n := math.Round(x)
	if n > maxFactorial {
		return 0, &DomainError{Func: "!", X: x}
	}
	r := 1.0
	for k := 2.0; k <= n; k++ {
		r *= k
	}
	return r, nil
}

// radians converts an angle to radians if degrees is set.
func radians(x float64, degrees bool) float64 {
	if degrees {
		return x * (math.Pi / 180)
	}
	return x
}

// call1 evaluates a function of one argument.
func call1(k Kind, x float64, degrees bool) (float64, error) {
	switch k {
	case FnSin:
		return math.Sin(radians(x, degrees)), nil
	case FnCos:
		return math.Cos(radians(x, degrees)), nil
	case FnTan:
		return math.Tan(radians(x, degrees)), nil
	case FnSqrt:
		if x < 0 {
			return 0, &DomainError{Func: "sqrt", X: x}
		}
		return math.Sqrt(x), nil
	case FnLog10:
		if x <= 0 {
			return 0, &DomainError{Func: "log", X: x}
		}
		return math.Log10(x), nil
	case FnLn:
		if x <= 0 {
			return 0, &DomainError{Func: "ln", X: x}
		}
		return math.Log(x), nil
	case FnLog2:
		if x <= 0 {
			return 0, &DomainError{Func: "log2", X: x}
		}
		return math.Log2(x), nil
	case FnAbs:
		return math.Abs(x), nil
	case FnExp:
		return math.Exp(x), nil
	case FnCsc:
		s := math.Sin(radians(x, degrees))
		if s == 0 {
			return 0, &DomainError{Func: "csc", X: x}
		}
		return 1 / s, nil
	case FnSec:
		c := math.Cos(radians(x, degrees))
		if c == 0 {
			return 0, &DomainError{Func: "sec", X: x}
		}
		return 1 / c, nil
	case FnCot:
		t := math.Tan(radians(x, degrees))
		if t == 0 {
			return 0, &DomainError{Func: "cot", X: x}
		}
		return 1 / t, nil
	case Factorial:
		return factorial(x)
	default:
		panic("calc: " + k.String() + " is not unary")
	}
}

// call2 evaluates a binary operator or function.
func call2(k Kind, a, b float64) (float64, error) {
	switch k {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, &DomainError{Func: "/", X: b}
		}
		return a / b, nil
	case Modulo:
		if b == 0 {
			return 0, &DomainError{Func: "%", X: b}
		}
		return math.Mod(a, b), nil
	case Power, FnPow:
		return math.Pow(a, b), nil
	default:
		panic("calc: " + k.String() + " is not binary")
	}
}
