package stdlib

var descriptions = map[string]string{
	"sin":       "sin(angle): sine of an angle",
	"cos":       "cos(angle): cosine of an angle",
	"tan":       "tan(angle): tangent of an angle",
	"asin":      "asin(x): angle whose sine is x",
	"acos":      "acos(x): angle whose cosine is x",
	"atan":      "atan(x): angle whose tangent is x",
	"sinh":      "sinh(x): hyperbolic sine",
	"cosh":      "cosh(x): hyperbolic cosine",
	"tanh":      "tanh(x): hyperbolic tangent",
	"sqrt":      "sqrt(x): square root of x",
	"cbrt":      "cbrt(x): real cube root of x",
	"log":       "log(x): natural logarithm",
	"log10":     "log10(x): base-10 logarithm",
	"log2":      "log2(x): base-2 logarithm",
	"exp":       "exp(x): e raised to the power x",
	"pi":        "pi: the constant π (3.14159...)",
	"e":         "e: Euler's number (2.71828...)",
	"pow":       "pow(x, y): x raised to the power y",
	"abs":       "abs(x): absolute value of x",
	"ceil":      "ceil(x): smallest integer not less than x",
	"floor":     "floor(x): largest integer not greater than x",
	"round":     "round(x): nearest integer, ties to even",
	"factorial": "factorial(n): product of the integers 1 through n",
}

// Operators describes the operators of the expression syntax, in the order
// they should be listed.
var Operators = []string{
	"a + b, a - b: addition and subtraction",
	"a * b, a x b: multiplication",
	"a / b: division",
	"a // b: floor division",
	"a % b: remainder, with the sign of b",
	"a ^ b, a ** b: exponentiation, grouping to the right",
}

// Describe returns a one-line description of a standard function or constant,
// or the empty string if name is not one.
func Describe(name string) string {
	return descriptions[name]
}
