package calc

// Result is the outcome of Calculate.
type Result struct {
	// Value is the numeric result.
	Value float64
	// Exact is true if the result came from ResolveSymbolic, in which case
	// Symbolic and Degree are set.
	Exact    bool
	Symbolic string
	Degree   int
}

// Calculate evaluates an expression the way a calculator display does. In
// degree mode, whole-degree trigonometric calls like "cos(45)" first get an
// exact closed form from ResolveSymbolic; everything else is evaluated
// numerically.
func Calculate(src string, degrees bool, opts ...ParseOption) (Result, error) {
	if degrees {
		sym, ok, err := ResolveSymbolic(src)
		if err != nil {
			return Result{}, err
		}
		if ok {
			return Result{Value: sym.Value, Exact: true, Symbolic: sym.Display, Degree: sym.Degree}, nil
		}
	}
	v, err := Evaluate(src, degrees, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v}, nil
}
