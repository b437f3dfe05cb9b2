package pyinterp

import "fmt"

// Grid is the interface shared by Grid2D, Grid3D and Grid4D instances with
// float64 coordinate axes. It is satisfied only by types in this package.
type Grid[F Float] interface {
	// NDim returns the number of axes.
	NDim() int

	evalAll(coords [][]float64, opts Options) ([]F, error)
}

// Interpolator dispatches batch queries to a grid of any supported
// dimensionality through a single call surface: one coordinate array per
// axis, one interpolation method per call. Coordinates for a temporal
// third axis are given as float64 tick counts and converted to int64.
//
// Like the grids it wraps, an Interpolator is read-only and safe for
// concurrent use.
type Interpolator[F Float] struct {
	grid Grid[F]
}

// NewInterpolator wraps a grid.
func NewInterpolator[F Float](g Grid[F]) *Interpolator[F] {
	return &Interpolator[F]{grid: g}
}

// NDim returns the number of axes of the underlying grid.
func (ip *Interpolator[F]) NDim() int { return ip.grid.NDim() }

// Interpolate evaluates the batch defined by one coordinate array per
// axis, in the grid's axis declaration order. All arrays must have equal
// length; the result has one value per query with NaN flagging rejected
// elements.
func (ip *Interpolator[F]) Interpolate(coords [][]float64, opts Options) ([]F, error) {
	if len(coords) != ip.grid.NDim() {
		return nil, fmt.Errorf("%w: got %d coordinate arrays for a %d-axis grid",
			ErrInvalidQuery, len(coords), ip.grid.NDim())
	}
	for d := 1; d < len(coords); d++ {
		if len(coords[d]) != len(coords[0]) {
			return nil, fmt.Errorf("%w: coordinate array %d has length %d, want %d",
				ErrInvalidQuery, d, len(coords[d]), len(coords[0]))
		}
	}
	return ip.grid.evalAll(coords, opts)
}
