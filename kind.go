package calcpro

import (
	"errors"
	"strconv"
)

// Kind classifies the errors produced while parsing, validating, and
// evaluating expressions.
type Kind int8

const (
	// KindNone is the kind of nil and of errors not produced by this package.
	KindNone Kind = iota
	// InvalidCharacter is a character outside the expression alphabet.
	InvalidCharacter
	// UnbalancedParentheses is a parenthesis without its partner.
	UnbalancedParentheses
	// Syntax is a token sequence that does not match the grammar.
	Syntax
	// UnknownSymbol is a name that is not a constant in the table.
	UnknownSymbol
	// UnknownFunction is a called name that is not a function in the table.
	UnknownFunction
	// ArityMismatch is a call with the wrong number of arguments.
	ArityMismatch
	// TooComplex is nesting deeper than the configured limit.
	TooComplex
	// DivisionByZero is a division, modulus, or floor division by zero.
	DivisionByZero
	// Domain is an argument outside a function's real-valued domain.
	Domain
)

var kindNames = [...]string{
	KindNone:              "None",
	InvalidCharacter:      "InvalidCharacter",
	UnbalancedParentheses: "UnbalancedParentheses",
	Syntax:                "Syntax",
	UnknownSymbol:         "UnknownSymbol",
	UnknownFunction:       "UnknownFunction",
	ArityMismatch:         "ArityMismatch",
	TooComplex:            "TooComplex",
	DivisionByZero:        "DivisionByZero",
	Domain:                "Domain",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// KindOf returns the kind of err, looking through wrapped errors. The result
// is KindNone if err is nil or did not originate in this package.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindNone
}
