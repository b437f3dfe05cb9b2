package pyinterp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/leexhwhy/pangeo-pyinterp/internal/axis"
)

// Axis is a spatial coordinate dimension with float64 coordinates.
type Axis = axis.Axis[float64]

// TemporalAxis is a time dimension expressed as int64 tick counts
// (e.g. seconds or nanoseconds since an epoch). Bracketing a temporal axis
// still produces a float64 fractional offset, computed as the exact linear
// ratio between the surrounding tick values.
type TemporalAxis = axis.Axis[int64]

// NewAxis builds a spatial axis from a strictly monotonic coordinate
// sequence, ascending or descending. Regular spacing is detected
// automatically and enables O(1) lookup.
func NewAxis(values []float64) (*Axis, error) {
	a, err := axis.New(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	return a, nil
}

// NewCircularAxis builds a periodic spatial axis, e.g. a longitude axis
// with period 360. The samples must cover exactly one period: the sampled
// span plus the wrap cell back to the first sample equals the period.
func NewCircularAxis(values []float64, period float64) (*Axis, error) {
	a, err := axis.New(values, axis.Circular(period))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	return a, nil
}

// NewTemporalAxis builds a time axis from strictly monotonic tick counts.
func NewTemporalAxis(ticks []int64) (*TemporalAxis, error) {
	a, err := axis.New(ticks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	return a, nil
}

// NewUniformAxis builds a regularly spaced axis of n coordinates starting
// at start with the given step. step may be negative for a descending
// axis.
func NewUniformAxis(start, step float64, n int) (*Axis, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: axis needs at least one coordinate, got %d", ErrConstruction, n)
	}
	if n > 1 && step == 0 {
		return nil, fmt.Errorf("%w: uniform axis step must be nonzero", ErrConstruction)
	}
	if n == 1 {
		return NewAxis([]float64{start})
	}
	values := floats.Span(make([]float64, n), start, start+step*float64(n-1))
	return NewAxis(values)
}
