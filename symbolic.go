package calc

import (
	"math"
	"strings"
)

// Symbolic is an exact closed form of a trigonometric function at a whole
// number of degrees.
type Symbolic struct {
	// Degree is the angle normalized into [0, 360).
	Degree int
	// Display is the closed form, e.g. "sqrt(2)/2" or "-1/2".
	Display string
	// Value is the numeric value of Display.
	Value float64
}

// UndefinedError is returned when a trigonometric function has a pole at the
// requested angle.
type UndefinedError struct {
	// Func is the function name.
	Func string
	// Degree is the normalized angle.
	Degree int
}

func (err *UndefinedError) Error() string {
	return err.Func + " undefined"
}

// Is returns whether target is ErrDomain.
func (err *UndefinedError) Is(target error) bool {
	return target == ErrDomain
}

// closedForm is a magnitude of a trigonometric function at a reference angle.
type closedForm struct {
	val  float64
	text string
	pole bool
}

var (
	sqrt2 = math.Sqrt2
	sqrt3 = math.Sqrt(3)

	zero  = closedForm{0, "0", false}
	one   = closedForm{1, "1", false}
	pole  = closedForm{pole: true}
	half  = closedForm{0.5, "1/2", false}
	two   = closedForm{2, "2", false}
	r2    = closedForm{sqrt2, "sqrt(2)", false}
	r2on2 = closedForm{sqrt2 / 2, "sqrt(2)/2", false}
	r3    = closedForm{sqrt3, "sqrt(3)", false}
	r3on2 = closedForm{sqrt3 / 2, "sqrt(3)/2", false}
	r3on3 = closedForm{sqrt3 / 3, "sqrt(3)/3", false}
	twor3 = closedForm{2 / sqrt3, "2/sqrt(3)", false}
)

// trigTable holds magnitudes at the reference angles 0, 30, 45, 60, and 90
// degrees.
var trigTable = map[Kind][5]closedForm{
	FnSin: {zero, half, r2on2, r3on2, one},
	FnCos: {one, r3on2, r2on2, half, zero},
	FnTan: {zero, r3on3, one, r3, pole},
	FnCsc: {pole, two, r2, twor3, one},
	FnSec: {one, twor3, r2, two, pole},
	FnCot: {pole, r3, one, r3on3, zero},
}

// refIndex maps a reference angle to its column in trigTable.
func refIndex(ref int) int {
	switch ref {
	case 0:
		return 0
	case 30:
		return 1
	case 45:
		return 2
	case 60:
		return 3
	case 90:
		return 4
	default:
		return -1
	}
}

// negative returns whether fn is negative in the given quadrant.
func negative(fn Kind, quad int) bool {
	switch fn {
	case FnSin, FnCsc:
		return quad == 2 || quad == 3
	case FnCos, FnSec:
		return quad == 1 || quad == 2
	default:
		return quad == 1 || quad == 3
	}
}

// ResolveSymbolic recognizes expressions of the form name(angle), where name
// is one of sin, cos, tan, csc, sec, or cot and angle is a whole number of
// degrees, and finds an exact closed form for them.
//
// If the expression has that form and the angle is a multiple of 30 or 45
// degrees, the result is the closed form with ok set. If the function has a
// pole at the angle, the error is an *UndefinedError. Otherwise, ok is false
// and the error is nil; the expression should be evaluated numerically.
func ResolveSymbolic(src string) (sym Symbolic, ok bool, err error) {
	fn, angle, ok := matchTrigCall(src)
	if !ok || !isInteger(angle) {
		return Symbolic{}, false, nil
	}
	d := math.Mod(math.Round(angle), 360)
	if d < 0 {
		d += 360
	}
	deg := int(d)
	quad := deg / 90
	ref := deg % 90
	if refIndex(ref) < 0 {
		return Symbolic{}, false, nil
	}
	if quad%2 == 1 {
		// Odd quadrants reflect, so e.g. 120 uses the 60 degree column.
		ref = 90 - ref
	}
	f := trigTable[fn][refIndex(ref)]
	if f.pole {
		return Symbolic{}, false, &UndefinedError{Func: fn.String(), Degree: deg}
	}
	sym = Symbolic{Degree: deg, Display: f.text, Value: f.val}
	if f.val != 0 && negative(fn, quad) {
		sym.Display = "-" + f.text
		sym.Value = -f.val
	}
	return sym, true, nil
}

// matchTrigCall matches src against name(number), allowing whitespace between
// tokens and a sign before the number.
func matchTrigCall(src string) (Kind, float64, bool) {
	scan := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return kindNone, 0, false
		}
		if tok.kind == tokenEOF {
			break
		}
		toks = append(toks, tok)
		if len(toks) > 5 {
			return kindNone, 0, false
		}
	}
	if len(toks) < 4 || toks[0].kind != tokenIdent || toks[1].kind != tokenOpen {
		return kindNone, 0, false
	}
	fn := funcs[toks[0].text]
	if _, ok := trigTable[fn]; !ok {
		return kindNone, 0, false
	}
	neg := false
	rest := toks[2:]
	if rest[0].kind == tokenOp {
		switch rest[0].text {
		case "-":
			neg = true
		case "+":
		default:
			return kindNone, 0, false
		}
		rest = rest[1:]
	}
	if len(rest) != 2 || rest[0].kind != tokenNum || rest[1].kind != tokenClose {
		return kindNone, 0, false
	}
	v, err := number(rest[0].text)
	if err != nil {
		return kindNone, 0, false
	}
	if neg {
		v = -v
	}
	return fn, v, true
}
