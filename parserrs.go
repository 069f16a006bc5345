package calcpro

import "strconv"

// CharError is an error indicating a character that may not appear in an
// expression. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

func (err *CharError) Kind() Kind {
	return InvalidCharacter
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an open parenthesis.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Kind() Kind {
	return UnbalancedParentheses
}

// SyntaxError is an error indicating a token that does not fit the grammar
// where it appears. It implements InputError.
type SyntaxError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token, or the empty string at the end of
	// the input.
	Token string
	// Want describes what the parser expected instead.
	Want string
}

func (err *SyntaxError) Error() string {
	tok := "end of expression"
	if err.Token != "" {
		tok = strconv.Quote(err.Token)
	}
	if err.Want == "" {
		return errpos(err.Col, "unexpected "+tok)
	}
	return errpos(err.Col, "unexpected "+tok+", expected "+err.Want)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Kind() Kind {
	return Syntax
}

// DepthError is an error indicating an expression nested more deeply than
// the configured limit. It implements InputError; Col is zero when the error
// comes from validation rather than parsing.
type DepthError struct {
	// Col is the position at which the parser exceeded the limit.
	Col int
	// Limit is the maximum depth that was exceeded.
	Limit int
}

func (err *DepthError) Error() string {
	msg := "expression too complex (nesting deeper than " + strconv.Itoa(err.Limit) + ")"
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *DepthError) Pos() int {
	return err.Col
}

func (err *DepthError) Kind() Kind {
	return TooComplex
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// malformed input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*DepthError)(nil)
)
