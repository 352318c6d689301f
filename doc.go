// Package calc implements the expression engine of a scientific calculator.
//
// Expressions are compiled from infix notation into postfix order with the
// shunting-yard algorithm and then evaluated on a stack of float64 values.
// The grammar has the usual arithmetic operators, "%" for floating-point
// remainder, "^" for right-associative exponentiation, postfix "!" for
// factorial, and unary minus, which binds less tightly than "^", so "-2^2" is
// -4. Functions are always called with parentheses: sin, cos, tan, csc, sec,
// cot, sqrt, log (base 10), ln, log2, abs, exp, and pow(a, b).
//
// Trigonometric functions take radians or degrees according to a flag given
// at evaluation. In degree mode, ResolveSymbolic gives exact results like
// "sqrt(2)/2" for cos(45); Calculate combines both paths.
//
// Every call is independent, so all functions in this package are safe for
// concurrent use.
package calc
