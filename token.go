package calc

import (
	"strconv"
	"strings"
)

// Token is an element of a compiled expression in postfix order. Value is
// meaningful only when Kind is Number.
type Token struct {
	Kind  Kind
	Value float64
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}

// Kind identifies what a token does when evaluated.
type Kind int8

const (
	kindNone Kind = iota

	Number     // push Value
	Add        // a + b
	Subtract   // a - b
	Multiply   // a * b
	Divide     // a / b
	Modulo     // floating-point remainder of a / b
	Power      // a ^ b
	UnaryMinus // -a
	Factorial  // a!

	FnSin
	FnCos
	FnTan
	FnSqrt
	FnLog10
	FnLn
	FnLog2
	FnAbs
	FnExp
	FnPow
	FnCsc
	FnSec
	FnCot

	kindCount
)

var kindNames = [kindCount]string{
	kindNone:   "<none>",
	Number:     "num",
	Add:        "+",
	Subtract:   "-",
	Multiply:   "*",
	Divide:     "/",
	Modulo:     "%",
	Power:      "^",
	UnaryMinus: "neg",
	Factorial:  "!",
	FnSin:      "sin",
	FnCos:      "cos",
	FnTan:      "tan",
	FnSqrt:     "sqrt",
	FnLog10:    "log",
	FnLn:       "ln",
	FnLog2:     "log2",
	FnAbs:      "abs",
	FnExp:      "exp",
	FnPow:      "pow",
	FnCsc:      "csc",
	FnSec:      "sec",
	FnCot:      "cot",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsFunc returns whether k is a named function.
func (k Kind) IsFunc() bool {
	return FnSin <= k && k <= FnCot
}

// Arity returns the number of operands k consumes from the value stack.
func (k Kind) Arity() int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return int(operators[k].arity)
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// arity is the number of operands consumed.
	arity int8
}

// reduces returns whether top, already on the operator stack, must be
// emitted before p is pushed.
func (p operator) reduces(top operator) bool {
	if p.right {
		return p.prec < top.prec
	}
	return p.prec <= top.prec
}

var operators = [kindCount]operator{
	Number:     {arity: 0},
	Add:        {prec: 1, arity: 2},
	Subtract:   {prec: 1, arity: 2},
	Multiply:   {prec: 2, arity: 2},
	Divide:     {prec: 2, arity: 2},
	Modulo:     {prec: 2, arity: 2},
	Power:      {prec: 4, right: true, arity: 2},
	UnaryMinus: {prec: 3, right: true, arity: 1},
	Factorial:  {prec: 5, arity: 1},
	FnSin:      {prec: 5, arity: 1},
	FnCos:      {prec: 5, arity: 1},
	FnTan:      {prec: 5, arity: 1},
	FnSqrt:     {prec: 5, arity: 1},
	FnLog10:    {prec: 5, arity: 1},
	FnLn:       {prec: 5, arity: 1},
	FnLog2:     {prec: 5, arity: 1},
	FnAbs:      {prec: 5, arity: 1},
	FnExp:      {prec: 5, arity: 1},
	FnPow:      {prec: 5, arity: 2},
	FnCsc:      {prec: 5, arity: 1},
	FnSec:      {prec: 5, arity: 1},
	FnCot:      {prec: 5, arity: 1},
}

// binop gets the operator kind for a single-character operator token. unary
// selects the prefix reading of "-". The result is kindNone if there is no
// such operator.
func binop(text string, unary bool) Kind {
	switch text {
	case "+":
		return Add
	case "-":
		if unary {
			return UnaryMinus
		}
		return Subtract
	case "*":
		return Multiply
	case "/":
		return Divide
	case "%":
		return Modulo
	case "^":
		return Power
	case "!":
		return Factorial
	default:
		return kindNone
	}
}

// formatTokens writes a postfix sequence as space-separated tokens.
func formatTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
