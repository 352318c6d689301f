package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEvaluate() {
	v, err := calc.Evaluate("2 + 3 * 4", false)
	fmt.Println(v, err)
	v, err = calc.Evaluate("pow(2, 10) - 5!", false)
	fmt.Println(v, err)
	_, err = calc.Evaluate("sqrt(-1)", false)
	fmt.Println(err)

	// Output:
	// 14 <nil>
	// 904 <nil>
	// sqrt domain error
}

func ExampleParseString() {
	a, _ := calc.ParseString("2 + 3 * sin(30)")
	fmt.Println(a)
	b, _ := calc.ParseString("-2^2")
	fmt.Println(b)
	_, err := calc.ParseString("2^-2")
	fmt.Println(err)

	// Output:
	// 2 3 30 sin * +
	// 2 2 ^ neg
	// invalid expression
}

func ExampleResolveSymbolic() {
	sym, ok, err := calc.ResolveSymbolic("cos(135)")
	fmt.Println(sym.Display, sym.Degree, ok, err)
	_, ok, err = calc.ResolveSymbolic("tan(90)")
	fmt.Println(ok, err)
	_, ok, err = calc.ResolveSymbolic("sin(37)")
	fmt.Println(ok, err)

	// Output:
	// -sqrt(2)/2 135 true <nil>
	// false tan undefined
	// false <nil>
}

func ExampleDescribe() {
	_, err := calc.ParseString("2 + sinh(1)")
	fmt.Println(calc.Describe(err))

	// Output:
	// 5: unknown function: sinh (did you mean sin?)
}
