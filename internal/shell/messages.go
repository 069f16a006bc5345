package shell

import "github.com/zephyrtronium/calcpro"

// Message renders an evaluation error for the user.
func Message(err error) string {
	switch calcpro.KindOf(err) {
	case calcpro.InvalidCharacter:
		return "Invalid characters in expression! " + err.Error()
	case calcpro.UnbalancedParentheses:
		return "Unmatched parentheses in expression! " + err.Error()
	case calcpro.Syntax:
		return "Invalid syntax in expression! " + err.Error()
	case calcpro.UnknownSymbol, calcpro.UnknownFunction:
		return "Unknown function or variable! " + err.Error()
	case calcpro.ArityMismatch:
		return "Wrong number of arguments! " + err.Error()
	case calcpro.TooComplex:
		return "Expression too complex! " + err.Error()
	case calcpro.DivisionByZero:
		return "Cannot divide by zero!"
	case calcpro.Domain:
		return "Math domain error: " + err.Error()
	default:
		return err.Error()
	}
}
