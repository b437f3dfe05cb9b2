package pyinterp

import (
	"github.com/leexhwhy/pangeo-pyinterp/internal/axis"
	"github.com/leexhwhy/pangeo-pyinterp/internal/kernel"
)

// GridOption configures grid construction.
type GridOption func(*gridConfig)

type gridConfig struct {
	increasing bool
}

// IncreasingAxes normalizes the grid to ascending axes at construction:
// descending axes are reversed and the sample array is flipped along the
// matching dimensions. Queries behave identically either way; the option
// exists for callers that want the stored orientation canonical.
func IncreasingAxes() GridOption {
	return func(c *gridConfig) { c.increasing = true }
}

func applyGridOptions(opts []GridOption) gridConfig {
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// resolveBracket locates q on the axis and applies the bounds policy.
// ok is false only when the query is out of range under Reject; for Clamp
// the bracket collapses onto the boundary sample and for Extrapolate the
// raw ratio is kept, extending the boundary cell linearly.
func resolveBracket[T axis.Number](a *axis.Axis[T], q T, p BoundsPolicy) (axis.Bracket, bool) {
	b := a.Locate(q)
	if b.Inside() {
		return b, true
	}
	switch p {
	case Clamp:
		return b.Clamp(), true
	case Extrapolate:
		return b, true
	default:
		return b, false
	}
}

// cubicWindow returns the sample indices and basis weights for one axis of
// a cubic kernel: the 4-point Catmull-Rom window when the axis is long
// enough, the bracket cell with linear hat weights otherwise. The degrade
// is per axis and deterministic; StrictWindow turns it into an error
// before evaluation starts.
func cubicWindow[T axis.Number](a *axis.Axis[T], b axis.Bracket) ([4]int, [4]float64, int) {
	if idx, ok := a.Window4(b); ok {
		return idx, kernel.CubicWeights(b.T), 4
	}
	lw := kernel.LinearWeights(b.T)
	return [4]int{b.Lo, b.Hi}, [4]float64{lw[0], lw[1], 0, 0}, 2
}

// wrapIndex reduces an index modulo the axis length on circular axes and
// leaves it untouched otherwise.
func wrapIndex[T axis.Number](a *axis.Axis[T], i int) int {
	if a.IsCircular() {
		n := a.Len()
		return ((i % n) + n) % n
	}
	return i
}
