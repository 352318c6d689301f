package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal.
	tokenNum
	// tokenIdent is a function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is a function argument separator.
	tokenSep
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^%!"

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// back holds runes returned to the input, most recent last.
	back []rune
	rune int
	eof  bool
	// err is a read error found while looking ahead.
	err error
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	if n := len(l.back); n > 0 {
		r := l.back[n-1]
		l.back = l.back[:n-1]
		l.rune++
		return r, nil
	}
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune returns r to the input and updates the lexer's position info.
// Runes must be unread in the reverse of the order they were read.
func (l *lexer) unreadRune(r rune) {
	l.back = append(l.back, r)
	l.rune--
}

// next scans the next token from the input. The first time EOF is reached,
// the result is an EOF token with a nil error. Subsequent times, the result is
// an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune(r)
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune(r)
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = tokenSep
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

const digits = "0123456789"

// accept consumes the next rune if it is one of valid.
func (l *lexer) accept(valid string) bool {
	r, err := l.readRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		return false
	}
	if !strings.ContainsRune(valid, r) {
		l.unreadRune(r)
		return false
	}
	l.buf.WriteRune(r)
	return true
}

// acceptRun consumes runes as long as they are in valid and returns how many
// it consumed.
func (l *lexer) acceptRun(valid string) int {
	n := 0
	for l.accept(valid) {
		n++
	}
	return n
}

// scanNum scans the longest prefix of the input that forms a decimal
// floating-point literal. Whatever follows is left for the next token, so
// "2x" is a number and an identifier. An exponent marker is only part of the
// literal when digits follow it.
func (l *lexer) scanNum() error {
	n := l.acceptRun(digits)
	if l.accept(".") {
		n += l.acceptRun(digits)
	}
	if l.err != nil {
		return l.err
	}
	if n == 0 {
		return l.error("number")
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if r != 'e' && r != 'E' {
		l.unreadRune(r)
		return nil
	}
	mark := []rune{r}
	r, err = l.readRune()
	if err == nil && (r == '+' || r == '-') {
		mark = append(mark, r)
		r, err = l.readRune()
	}
	switch {
	case err == nil && '0' <= r && r <= '9':
		for _, m := range mark {
			l.buf.WriteRune(m)
		}
		l.buf.WriteRune(r)
		l.acceptRun(digits)
		return l.err
	case err == nil:
		mark = append(mark, r)
	case !errors.Is(err, io.EOF):
		return err
	}
	for i := len(mark) - 1; i >= 0; i-- {
		l.unreadRune(mark[i])
	}
	return nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune(r)
			return nil
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// number converts the text of a numeric token to its value. Literals too
// large to represent become infinite.
func number(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			// ParseFloat returns ±Inf or ±0 with ErrRange.
			return v, nil
		}
		return 0, err
	}
	return v, nil
}
