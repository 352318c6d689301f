package calc

import (
	"errors"
	"strconv"
	"strings"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return "invalid character: " + err.Text
	}
	return "invalid " + err.Kind + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier that does not name a
// function. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier.
	Name string
	// Suggest lists known function names resembling Name, closest first.
	Suggest []string
}

func (err *NameError) Error() string {
	return "unknown function: " + err.Name
}

func (err *NameError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator with no value to its
// left. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
}

func (err *OperatorError) Error() string {
	if err.Operator == "!" {
		return "factorial needs a value"
	}
	return "operator missing value"
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched close parenthesis, or of the end of
	// input if an open parenthesis was never closed.
	Col int
	// Open is true if the unmatched parenthesis is an open parenthesis.
	Open bool
}

func (err *BracketError) Error() string {
	return "mismatched parentheses"
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside of a function
// argument list. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
}

func (err *SeparatorError) Error() string {
	return "misplaced comma"
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name without an argument list
// or a call with the wrong number of arguments. It implements InputError.
type CallError struct {
	// Col is the position of the token that revealed the error.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied, or 0 if the name was
	// not followed by an argument list.
	Len int
}

func (err *CallError) Error() string {
	return ErrInvalidExpression.Error()
}

// Is returns whether target is ErrInvalidExpression.
func (err *CallError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	return ErrInvalidExpression.Error()
}

// Is returns whether target is ErrInvalidExpression.
func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// CapacityError is an error indicating that an expression needs more tokens
// or stack entries than its capacity allows. It implements InputError.
type CapacityError struct {
	// Col is the position at which the capacity was exceeded, or 0 if it was
	// exceeded during evaluation.
	Col int
	// Cap is the capacity that was exceeded.
	Cap int
}

func (err *CapacityError) Error() string {
	return "expression too long"
}

func (err *CapacityError) Pos() int {
	return err.Col
}

// ErrInvalidExpression is returned for a postfix sequence that does not
// reduce to exactly one value.
var ErrInvalidExpression = errors.New("invalid expression")

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*CapacityError)(nil)
)

// Describe formats an error with its input position, if it has one, and any
// function name suggestions, e.g. "4: unknown function: sine (did you mean
// sin?)".
func Describe(err error) string {
	var b strings.Builder
	var ie InputError
	if errors.As(err, &ie) && ie.Pos() > 0 {
		b.WriteString(strconv.Itoa(ie.Pos()))
		b.WriteString(": ")
	}
	b.WriteString(err.Error())
	var ne *NameError
	if errors.As(err, &ne) && len(ne.Suggest) > 0 {
		b.WriteString(" (did you mean ")
		b.WriteString(strings.Join(ne.Suggest, " or "))
		b.WriteString("?)")
	}
	return b.String()
}
