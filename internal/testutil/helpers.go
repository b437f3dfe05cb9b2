// Package testutil provides reusable helpers for grid interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits float64 comparisons where only rounding
	// noise is expected.
	DefaultTolerance = 1e-12

	// Float32Tolerance suits results computed at float32 precision.
	Float32Tolerance = 1e-5
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// Sequence returns [0, 1, ..., n-1] as float64 coordinates.
func Sequence(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

// PlaneField fills a row-major 2-axis sample array with a linear function
// of the coordinates. Multilinear interpolation reproduces such a field
// exactly everywhere inside the grid, which makes it a convenient oracle.
func PlaneField(xs, ys []float64, a, b, c float64) []float64 {
	out := make([]float64, len(xs)*len(ys))
	for i, x := range xs {
		for j, y := range ys {
			out[i*len(ys)+j] = a*x + b*y + c
		}
	}
	return out
}

// PlaneField3 is PlaneField for three axes.
func PlaneField3(xs, ys, zs []float64, a, b, c, d float64) []float64 {
	ny, nz := len(ys), len(zs)
	out := make([]float64, len(xs)*ny*nz)
	for i, x := range xs {
		for j, y := range ys {
			for k, z := range zs {
				out[(i*ny+j)*nz+k] = a*x + b*y + c*z + d
			}
		}
	}
	return out
}
