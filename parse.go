package calc

import (
	"io"
	"strings"
)

// Expr = num | Call | Neg | Fact | Binary | '(' Expr ')'
// Call = funcname '(' Expr { ',' Expr } ')'
// Neg = '-' Expr
// Fact = Expr '!'
// Binary = Expr ('+' | '-' | '*' | '/' | '%' | '^') Expr

// Expr is a compiled expression, stored as a sequence of tokens in postfix
// order. An Expr is immutable and safe to evaluate concurrently.
type Expr struct {
	// toks is the postfix sequence.
	toks []Token
	// cap bounds the value stack during evaluation.
	cap int
}

// Tokens returns a copy of the expression's postfix token sequence.
func (e *Expr) Tokens() []Token {
	return append(([]Token)(nil), e.toks...)
}

// String formats the expression in reverse Polish notation.
func (e *Expr) String() string {
	return formatTokens(e.toks)
}

// pending is an entry on the operator stack.
type pending struct {
	// kind is the operator kind, or kindNone for an open parenthesis.
	kind Kind
	// call is the function that owns an open parenthesis, if any.
	call Kind
	// seps counts the separators seen inside an open parenthesis.
	seps int
}

// prevKind classifies the previous significant token, which decides how the
// next token is read.
type prevKind int8

const (
	prevNone  prevKind = iota // start of input
	prevValue                 // number, close parenthesis, or factorial
	prevOp                    // binary or prefix operator
	prevOpen                  // open parenthesis or separator
	prevFunc                  // function name
)

type compiler struct {
	scan *lexer
	cap  int
	out  []Token
	ops  []pending
	prev prevKind
}

// Parse compiles an infix expression into postfix order. The given options
// are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	p := newParsectx(opts)
	c := compiler{
		scan: lex(src),
		cap:  p.cap,
	}
	toks, err := c.run()
	if err != nil {
		return nil, err
	}
	if err := validate(toks); err != nil {
		return nil, err
	}
	return &Expr{toks: toks, cap: p.cap}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

func (c *compiler) run() ([]Token, error) {
	for {
		tok, err := c.scan.next()
		if err != nil {
			return nil, err
		}
		if c.prev == prevFunc && tok.kind != tokenOpen {
			fn := c.ops[len(c.ops)-1].kind
			return nil, &CallError{Col: tok.pos, Func: fn.String()}
		}
		switch tok.kind {
		case tokenEOF:
			return c.finish(tok)
		case tokenNum:
			v, err := number(tok.text)
			if err != nil {
				return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			if err := c.emit(Token{Kind: Number, Value: v}, tok.pos); err != nil {
				return nil, err
			}
			c.prev = prevValue
		case tokenIdent:
			k, ok := funcs[tok.text]
			if !ok {
				return nil, &NameError{Col: tok.pos, Name: tok.text, Suggest: suggest(tok.text)}
			}
			if err := c.push(pending{kind: k}, tok.pos); err != nil {
				return nil, err
			}
			c.prev = prevFunc
		case tokenOpen:
			e := pending{}
			if c.prev == prevFunc {
				e.call = c.ops[len(c.ops)-1].kind
			}
			if err := c.push(e, tok.pos); err != nil {
				return nil, err
			}
			c.prev = prevOpen
		case tokenClose:
			if err := c.close(tok); err != nil {
				return nil, err
			}
			c.prev = prevValue
		case tokenSep:
			if err := c.sep(tok); err != nil {
				return nil, err
			}
			c.prev = prevOpen
		case tokenOp:
			if err := c.op(tok); err != nil {
				return nil, err
			}
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// emit appends a token to the output.
func (c *compiler) emit(t Token, col int) error {
	if len(c.out) >= c.cap {
		return &CapacityError{Col: col, Cap: c.cap}
	}
	c.out = append(c.out, t)
	return nil
}

// push pushes an entry to the operator stack.
func (c *compiler) push(e pending, col int) error {
	if len(c.ops) >= c.cap {
		return &CapacityError{Col: col, Cap: c.cap}
	}
	c.ops = append(c.ops, e)
	return nil
}

// pop removes the top of the operator stack and returns it.
func (c *compiler) pop() pending {
	e := c.ops[len(c.ops)-1]
	c.ops = c.ops[:len(c.ops)-1]
	return e
}

// unwind emits operators until an open parenthesis is on top of the stack.
// The result is false if the stack empties first.
func (c *compiler) unwind(col int) (bool, error) {
	for len(c.ops) > 0 {
		if c.ops[len(c.ops)-1].kind == kindNone {
			return true, nil
		}
		if err := c.emit(Token{Kind: c.pop().kind}, col); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (c *compiler) close(tok lexToken) error {
	if c.prev == prevOpen {
		return &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	ok, err := c.unwind(tok.pos)
	if err != nil {
		return err
	}
	if !ok {
		return &BracketError{Col: tok.pos}
	}
	open := c.pop()
	if open.call == kindNone {
		return nil
	}
	// The function that owns the parenthesis is exposed now. Attach it to its
	// completed arguments.
	if n := open.seps + 1; n != open.call.Arity() {
		return &CallError{Col: tok.pos, Func: open.call.String(), Len: n}
	}
	return c.emit(Token{Kind: c.pop().kind}, tok.pos)
}

func (c *compiler) sep(tok lexToken) error {
	if c.prev == prevOpen {
		return &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	ok, err := c.unwind(tok.pos)
	if err != nil {
		return err
	}
	if !ok {
		return &SeparatorError{Col: tok.pos}
	}
	open := &c.ops[len(c.ops)-1]
	if open.call == kindNone {
		// Separators only belong in argument lists.
		return &SeparatorError{Col: tok.pos}
	}
	open.seps++
	return nil
}

func (c *compiler) op(tok lexToken) error {
	k := binop(tok.text, c.prev != prevValue)
	if k == kindNone {
		panic("calc: unknown operator " + tok.text)
	}
	if k != UnaryMinus && c.prev != prevValue {
		return &OperatorError{Col: tok.pos, Operator: tok.text}
	}
	o := operators[k]
	for len(c.ops) > 0 {
		top := c.ops[len(c.ops)-1].kind
		if top == kindNone || !o.reduces(operators[top]) {
			break
		}
		if err := c.emit(Token{Kind: c.pop().kind}, tok.pos); err != nil {
			return err
		}
	}
	if err := c.push(pending{kind: k}, tok.pos); err != nil {
		return err
	}
	if k == Factorial {
		c.prev = prevValue
	} else {
		c.prev = prevOp
	}
	return nil
}

// finish drains the operator stack at the end of input.
func (c *compiler) finish(tok lexToken) ([]Token, error) {
	if c.prev == prevNone {
		return nil, &EmptyExpressionError{Col: tok.pos}
	}
	for len(c.ops) > 0 {
		e := c.pop()
		if e.kind == kindNone {
			return nil, &BracketError{Col: tok.pos, Open: true}
		}
		if err := c.emit(Token{Kind: e.kind}, tok.pos); err != nil {
			return nil, err
		}
	}
	return c.out, nil
}

// validate checks that a postfix sequence reduces to exactly one value.
func validate(toks []Token) error {
	depth := 0
	for _, t := range toks {
		n := t.Kind.Arity()
		if depth < n {
			return ErrInvalidExpression
		}
		depth += 1 - n
	}
	if depth != 1 {
		return ErrInvalidExpression
	}
	return nil
}
