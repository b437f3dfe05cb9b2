// Package pyinterp interpolates scalar fields sampled on structured grids
// of 2, 3 or 4 orthogonal axes, in pure Go.
//
// Given coordinate axes (e.g. longitude, latitude, level, time) and a
// dense sample array, the engine evaluates interpolated values at
// arbitrary query coordinates, one at a time or in large parallel batches.
//
// # Features
//
//   - Regular axes located in O(1), irregular axes by binary search
//   - Circular (periodic) axes for longitude, with correct interpolation
//     across the wrap seam
//   - Temporal axes over int64 tick counts with exact blends between
//     time slices
//   - Nearest, multilinear, inverse-distance and bicubic kernels
//   - Per-call out-of-range policy: reject, clamp, or linear extrapolation
//   - Per-call missing-value (NaN) policy: propagate or renormalize
//   - float32 and float64 sample precision via generic instantiation
//   - Batch queries fanned out across a worker pool, with per-element
//     failure isolation
//   - Optional SIMD acceleration via github.com/tphakala/simd
//
// # Quick Start
//
// Build a grid once, query it many times:
//
//	lon, _ := pyinterp.NewCircularAxis([]float64{0, 90, 180, 270}, 360)
//	lat, _ := pyinterp.NewAxis([]float64{-45, 0, 45})
//	grid, err := pyinterp.NewGrid2D(lon, lat, samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := grid.Bivariate(lons, lats, pyinterp.DefaultOptions())
//
// The Interpolator facade offers the same surface for any dimensionality:
//
//	ip := pyinterp.NewInterpolator[float64](grid)
//	values, err := ip.Interpolate([][]float64{lons, lats}, opts)
//
// # Grid layout
//
// Sample arrays are row-major in axis declaration order: the last axis
// varies fastest. Axes may be ascending or descending; pass
// IncreasingAxes() at construction to normalize the stored orientation.
// Axes and samples are owned by the grid and must not be mutated after
// construction.
//
// # Out-of-range and missing values
//
// Queries beyond a non-circular axis follow Options.Bounds: Reject flags
// the element with NaN (single-point calls return ErrOutOfRange), Clamp
// evaluates at the boundary, Extrapolate extends the boundary cell
// linearly. Missing samples are NaN; Options.Fill decides whether they
// propagate or are excluded with weight renormalization.
//
// # Thread Safety
//
// Grids and axes are immutable after construction: every query is a pure
// read, so concurrent queries need no locking. Batch calls additionally
// parallelize internally across Options.Workers goroutines, each writing
// a disjoint slice of the output.
package pyinterp
