package pyinterp

import (
	"fmt"

	"github.com/leexhwhy/pangeo-pyinterp/internal/axis"
	"github.com/leexhwhy/pangeo-pyinterp/internal/kernel"
	"github.com/leexhwhy/pangeo-pyinterp/internal/simdops"
	"github.com/leexhwhy/pangeo-pyinterp/internal/store"
)

// Grid2D is a scalar field sampled over two axes. The sample array is
// row-major in axis declaration order: values[i*len(y)+j] is the sample at
// (x[i], y[j]).
//
// A grid owns its axes and samples exclusively and is immutable after
// construction, so any number of goroutines may query it concurrently.
type Grid2D[F Float] struct {
	x, y *Axis
	data *store.Dense[F]
	ops  *simdops.Ops[F]
}

// NewGrid2D builds a 2-axis grid. The values slice must hold exactly
// len(x)*len(y) samples; the grid takes ownership of it (and of the axes).
// Missing samples are represented by NaN.
func NewGrid2D[F Float](x, y *Axis, values []F, opts ...GridOption) (*Grid2D[F], error) {
	cfg := applyGridOptions(opts)
	data, err := store.New(values, x.Len(), y.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	g := &Grid2D[F]{x: x, y: y, data: data, ops: simdops.For[F]()}
	if cfg.increasing {
		if !g.x.IsAscending() {
			g.x = g.x.Reversed()
			data.Flip(0)
		}
		if !g.y.IsAscending() {
			g.y = g.y.Reversed()
			data.Flip(1)
		}
	}
	return g, nil
}

// X returns the first axis.
func (g *Grid2D[F]) X() *Axis { return g.x }

// Y returns the second axis.
func (g *Grid2D[F]) Y() *Axis { return g.y }

// Values returns the backing sample slice. Treat it as read-only.
func (g *Grid2D[F]) Values() []F { return g.data.Values() }

// NDim returns 2.
func (g *Grid2D[F]) NDim() int { return 2 }

// Fetch returns the sample at the given corner indices, applying the
// periodic wrap on circular axes first. A non-circular index outside the
// axis after wrap adjustment is an internal invariant violation reported
// as ErrInternal.
func (g *Grid2D[F]) Fetch(i, j int) (F, error) {
	v, err := g.data.Fetch(wrapIndex(g.x, i), wrapIndex(g.y, j))
	if err != nil {
		return v, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return v, nil
}

// BivariateAt interpolates the field at a single coordinate pair.
func (g *Grid2D[F]) BivariateAt(x, y float64, opts Options) (F, error) {
	if err := opts.Validate(); err != nil {
		return kernel.NaN[F](), err
	}
	if err := g.checkWindow(&opts); err != nil {
		return kernel.NaN[F](), err
	}
	return g.evalAt(x, y, &opts)
}

// Bivariate interpolates a batch of independent queries given as parallel
// coordinate arrays. The result has one value per query; elements that
// fail (out of range under Reject) are flagged with NaN and never affect
// their siblings. Evaluation fans out across Options.Workers goroutines.
func (g *Grid2D[F]) Bivariate(xs, ys []float64, opts Options) ([]F, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: coordinate arrays have lengths %d and %d",
			ErrInvalidQuery, len(xs), len(ys))
	}
	if err := g.checkWindow(&opts); err != nil {
		return nil, err
	}

	out := make([]F, len(xs))
	forEachChunk(len(xs), opts.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, err := g.evalAt(xs[i], ys[i], &opts)
			if err != nil {
				out[i] = kernel.NaN[F]()
				continue
			}
			out[i] = v
		}
	})
	return out, nil
}

// checkWindow enforces the strict cubic window policy once per call.
func (g *Grid2D[F]) checkWindow(o *Options) error {
	if o.Kernel != Bicubic || !o.StrictWindow {
		return nil
	}
	if g.x.Len() < 4 || g.y.Len() < 4 {
		return fmt.Errorf("%w: bicubic needs 4 samples per spatial axis, grid is %dx%d",
			ErrInsufficientNeighbors, g.x.Len(), g.y.Len())
	}
	return nil
}

func (g *Grid2D[F]) evalAt(qx, qy float64, o *Options) (F, error) {
	bx, ok := resolveBracket(g.x, qx, o.Bounds)
	if !ok {
		return kernel.NaN[F](), fmt.Errorf("%w: x=%g outside [%g, %g]",
			ErrOutOfRange, qx, g.x.MinValue(), g.x.MaxValue())
	}
	by, ok := resolveBracket(g.y, qy, o.Bounds)
	if !ok {
		return kernel.NaN[F](), fmt.Errorf("%w: y=%g outside [%g, %g]",
			ErrOutOfRange, qy, g.y.MinValue(), g.y.MaxValue())
	}

	if o.Kernel == Bicubic {
		return g.cubicAt(bx, by, o), nil
	}

	// Corners in bit order: bit 0 selects the upper x sample, bit 1 the
	// upper y sample.
	var c [4]F
	c[0] = g.data.At2(bx.Lo, by.Lo)
	c[1] = g.data.At2(bx.Hi, by.Lo)
	c[2] = g.data.At2(bx.Lo, by.Hi)
	c[3] = g.data.At2(bx.Hi, by.Hi)
	ts := [2]float64{bx.T, by.T}

	switch o.Kernel {
	case Nearest:
		return kernel.Nearest(c[:], ts[:], o.fill()), nil
	case InverseDistance:
		return kernel.InverseDistance(g.ops, c[:], ts[:], o.Power, o.fill()), nil
	default:
		return kernel.Multilinear(g.ops, c[:], ts[:], o.fill()), nil
	}
}

// cubicAt evaluates the separable Catmull-Rom blend over a 4x4 window,
// degrading per axis to linear when an axis is shorter than the window.
func (g *Grid2D[F]) cubicAt(bx, by axis.Bracket, o *Options) F {
	xi, xw, xn := cubicWindow(g.x, bx)
	yi, yw, yn := cubicWindow(g.y, by)
	fill := o.fill()

	var buf, wbuf, rowv [4]F
	for i := 0; i < xn; i++ {
		for j := 0; j < yn; j++ {
			buf[j] = g.data.At2(xi[i], yi[j])
		}
		rowv[i] = kernel.WeightedCombine(g.ops, buf[:yn], yw[:yn], wbuf[:yn], fill)
	}
	return kernel.WeightedCombine(g.ops, rowv[:xn], xw[:xn], wbuf[:xn], fill)
}

func (g *Grid2D[F]) evalAll(coords [][]float64, opts Options) ([]F, error) {
	if len(coords) != 2 {
		return nil, fmt.Errorf("%w: got %d coordinate arrays, want 2", ErrInvalidQuery, len(coords))
	}
	return g.Bivariate(coords[0], coords[1], opts)
}
