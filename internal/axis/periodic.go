package axis

import "math"

// Periodic arithmetic used by the cell locator on circular axes. The
// fractional offsets it produces are already period-adjusted, so kernels
// downstream never re-wrap.

// Wrap reduces x into the half-open interval [lo, lo+period).
func Wrap(x, lo, period float64) float64 {
	r := math.Mod(x-lo, period)
	if r < 0 {
		r += period
	}
	return lo + r
}

// Forward returns the distance traveled from a to b moving in the positive
// direction around a circle of the given period, in [0, period).
func Forward(a, b, period float64) float64 {
	d := math.Mod(b-a, period)
	if d < 0 {
		d += period
	}
	return d
}
