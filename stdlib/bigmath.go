package stdlib

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// prec is the working precision for functions computed with bigfloat. It is
// enough for results to round correctly to float64 in practice, so that e.g.
// log10(1000) is exactly 3.
const prec = 128

var (
	// Pi is π rounded to float64.
	Pi = round(bigfloat.Pi(newbig()))
	// E is Euler's number rounded to float64.
	E = round(bigfloat.Exp(newbig(), newbig().SetInt64(1)))

	ln2  = bigfloat.Log(newbig(), newbig().SetInt64(2))
	ln10 = bigfloat.Log(newbig(), newbig().SetInt64(10))
)

func newbig() *big.Float {
	return new(big.Float).SetPrec(prec)
}

func round(x *big.Float) float64 {
	r, _ := x.Float64()
	return r
}

// biglog computes the natural logarithm of a positive finite x at full
// working precision.
func biglog(x float64) *big.Float {
	return bigfloat.Log(newbig(), newbig().SetFloat64(x))
}

// logspecial handles the arguments for which logarithms do not need bigfloat.
// The boolean result is false if x needs a real computation.
func logspecial(x float64) (float64, bool) {
	switch {
	case math.IsNaN(x), x < 0:
		return math.NaN(), true
	case x == 0:
		return math.Inf(-1), true
	case math.IsInf(x, 1):
		return x, true
	case x == 1:
		return 0, true
	default:
		return 0, false
	}
}

// Log returns the natural logarithm of x. Negative x gives NaN and zero gives
// negative infinity.
func Log(x float64) float64 {
	if r, ok := logspecial(x); ok {
		return r
	}
	return round(biglog(x))
}

// Log10 returns the base-10 logarithm of x.
func Log10(x float64) float64 {
	if r, ok := logspecial(x); ok {
		return r
	}
	z := biglog(x)
	return round(z.Quo(z, ln10))
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) float64 {
	if r, ok := logspecial(x); ok {
		return r
	}
	z := biglog(x)
	return round(z.Quo(z, ln2))
}

// Bounds outside which exp overflows to infinity or underflows to zero in
// float64.
const (
	expOverflow  = 709.782712893384
	expUnderflow = -745.1332191019412
)

// Exp returns e raised to the power x.
func Exp(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > expOverflow:
		return math.Inf(1)
	case x < expUnderflow:
		return 0
	case x == 0:
		return 1
	}
	return round(bigfloat.Exp(newbig(), newbig().SetFloat64(x)))
}
