// Package stdlib provides the standard symbol tables for calcpro expressions.
//
// Basic holds arithmetic helpers and the constants pi and e. Scientific adds
// trigonometric, hyperbolic, logarithmic, and exponential functions.
// Trigonometric functions honor the angle mode of each evaluation: forward
// functions read their argument in the current unit, and inverse functions
// return their result in it.
package stdlib

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/calcpro"
)

var (
	basic      = calcpro.NewTable(constants(), basicFuncs())
	scientific = calcpro.NewTable(constants(), scientificFuncs())
)

// Basic returns the table of arithmetic helpers and constants. The same table
// is returned on every call.
func Basic() *calcpro.Table {
	return basic
}

// Scientific returns the table of all standard functions and constants. The
// same table is returned on every call.
func Scientific() *calcpro.Table {
	return scientific
}

func constants() map[string]float64 {
	return map[string]float64{
		"pi": Pi,
		"e":  E,
	}
}

func basicFuncs() map[string]calcpro.Func {
	return map[string]calcpro.Func{
		"sqrt":      calcpro.Monadic(math.Sqrt),
		"cbrt":      calcpro.Monadic(math.Cbrt),
		"pow":       calcpro.NewFunc(2, pow),
		"abs":       calcpro.Monadic(math.Abs),
		"ceil":      calcpro.Monadic(math.Ceil),
		"floor":     calcpro.Monadic(math.Floor),
		"round":     calcpro.Monadic(math.RoundToEven),
		"factorial": calcpro.NewFunc(1, factorial),
	}
}

func scientificFuncs() map[string]calcpro.Func {
	m := basicFuncs()
	for k, v := range map[string]calcpro.Func{
		"sin":   trig(math.Sin),
		"cos":   trig(math.Cos),
		"tan":   trig(math.Tan),
		"asin":  arctrig(math.Asin),
		"acos":  arctrig(math.Acos),
		"atan":  arctrig(math.Atan),
		"sinh":  calcpro.Monadic(math.Sinh),
		"cosh":  calcpro.Monadic(math.Cosh),
		"tanh":  calcpro.Monadic(math.Tanh),
		"log":   calcpro.Monadic(Log),
		"log10": calcpro.Monadic(Log10),
		"log2":  calcpro.Monadic(Log2),
		"exp":   calcpro.Monadic(Exp),
	} {
		m[k] = v
	}
	return m
}

func pow(env calcpro.Env, args []float64) (float64, error) {
	r, err := calcpro.Power(args[0], args[1])
	// Let the evaluator attribute errors to pow rather than ^.
	switch err := err.(type) {
	case *calcpro.DomainError:
		err.Func = ""
	case *calcpro.DivisionError:
		err.Op = ""
	}
	return r, err
}

// maxFactorial is the largest n for which n! is finite as a float64.
const maxFactorial = 170

func factorial(env calcpro.Env, args []float64) (float64, error) {
	x := args[0]
	if x < 0 || x != math.Trunc(x) || math.IsNaN(x) {
		return 0, &calcpro.DomainError{X: x, Arg: 1, Detail: "not a non-negative integer"}
	}
	if x > maxFactorial {
		return 0, &calcpro.DomainError{X: x, Arg: 1, Detail: "result out of range"}
	}
	n := new(big.Int).MulRange(1, int64(x))
	r, _ := new(big.Float).SetInt(n).Float64()
	return r, nil
}
