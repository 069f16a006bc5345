package shell

import (
	"math"
	"strconv"
)

// Format renders a result for display. In scientific notation, results have
// six digits after the point. Otherwise integral results have no fractional
// part and other results use the shortest representation.
func Format(v float64, scientific bool) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	case scientific:
		return strconv.FormatFloat(v, 'e', 6, 64)
	case v == 0:
		// Also catches negative zero.
		return "0"
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
