package calcpro

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

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenIdent is a constant or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the function argument separator.
	tokenSep
)

var tokenNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenIdent: "Ident",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
	tokenSep:   "Sep",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// Operators contains the runes which may start an operator. The letter x is
// also a multiplication operator when it does not start an identifier.
const Operators = "+-*/%^"

// Punctuation contains the other non-alphanumeric runes allowed in
// expressions.
const Punctuation = "().,"

// precheck rejects characters outside the expression alphabet and unbalanced
// parentheses before any tokens are produced.
func precheck(src string) error {
	var open []int
	col := 0
	for _, r := range src {
		col++
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case r == ' ', r == '\t':
		case r == '(':
			open = append(open, col)
		case r == ')':
			if len(open) == 0 {
				return &BracketError{Col: col}
			}
			open = open[:len(open)-1]
		case strings.ContainsRune(Operators+Punctuation, r):
		default:
			return &CharError{Col: col, Char: r}
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[len(open)-1], Open: true}
	}
	return nil
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calcpro: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("calcpro: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time the input is
// exhausted, the result is an EOF token with a nil error. After that, the
// result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		tok := lexToken{pos: l.rune}
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
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(tok.pos); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == 'x':
			// x is multiplication unless it starts a longer identifier.
			s, _, err := l.src.ReadRune()
			if err == nil {
				l.src.UnreadRune()
			}
			if err == nil && unicode.IsLetter(s) {
				l.buf.WriteRune(r)
				if err := l.scanIdent(); err != nil {
					return tok, err
				}
				tok.text = l.buf.String()
				tok.kind = tokenIdent
				return tok, nil
			}
			tok.text = "x"
			tok.kind = tokenOp
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == '*', r == '/':
			// ** and // are single operators.
			tok.text = string(r)
			s, err := l.readRune()
			switch {
			case err != nil:
				if !errors.Is(err, io.EOF) {
					return tok, err
				}
			case s == r:
				tok.text += string(s)
			default:
				l.unreadRune()
			}
			tok.kind = tokenOp
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = tokenSep
			return tok, nil
		default:
			return tok, &CharError{Col: tok.pos, Char: r}
		}
	}
}

// scanNum scans a decimal number with an optional fractional part into the
// lexer's buffer. There must be at least one digit.
func (l *lexer) scanNum(pos int) error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			if dot {
				l.buf.WriteRune(r)
				return &SyntaxError{Col: pos, Token: l.buf.String(), Want: "number"}
			}
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if '0' <= r && r <= '9' {
			dig = true
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		break
	}
	if !dig {
		return &SyntaxError{Col: pos, Token: l.buf.String(), Want: "number"}
	}
	return nil
}

// scanIdent scans the rest of an identifier into the lexer's buffer.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}
