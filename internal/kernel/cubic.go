package kernel

// CubicWeights returns the 4-point Catmull-Rom basis evaluated at the
// fractional offset t of the center cell, for samples ordered
// [before-lower, lower, upper, after-upper]. The weights sum to 1 and
// reproduce the node values exactly at t=0 and t=1, so cubic results agree
// with the stored samples on the grid itself.
//
// The basis is parameterized on the fractional offset, so on irregular
// axes it blends by cell fraction rather than arc length; the center cell
// is still interpolated exactly.
func CubicWeights(t float64) [4]float64 {
	t2 := t * t
	t3 := t2 * t
	return [4]float64{
		-0.5*t3 + t2 - 0.5*t,
		1.5*t3 - 2.5*t2 + 1,
		-1.5*t3 + 2*t2 + 0.5*t,
		0.5*t3 - 0.5*t2,
	}
}

// LinearWeights returns the 2-point hat basis, used when a cubic kernel
// degrades to linear on an axis shorter than its window.
func LinearWeights(t float64) [2]float64 {
	return [2]float64{1 - t, t}
}
