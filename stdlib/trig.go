package stdlib

import (
	"math"

	"github.com/zephyrtronium/calcpro"
)

// trig wraps a trigonometric function whose argument is an angle.
func trig(f func(float64) float64) calcpro.Func {
	return calcpro.NewFunc(1, func(env calcpro.Env, args []float64) (float64, error) {
		x := args[0]
		a := x
		if env.Angle == calcpro.Degrees {
			a = x * (math.Pi / 180)
		}
		r := f(a)
		if calcpro.OutOfDomain(r, x) {
			return 0, &calcpro.DomainError{X: x, Arg: 1}
		}
		return r, nil
	})
}

// arctrig wraps an inverse trigonometric function whose result is an angle.
func arctrig(f func(float64) float64) calcpro.Func {
	return calcpro.NewFunc(1, func(env calcpro.Env, args []float64) (float64, error) {
		x := args[0]
		r := f(x)
		if calcpro.OutOfDomain(r, x) {
			return 0, &calcpro.DomainError{X: x, Arg: 1}
		}
		if env.Angle == calcpro.Degrees {
			r *= 180 / math.Pi
		}
		return r, nil
	})
}
