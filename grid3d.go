package pyinterp

import (
	"fmt"

	"github.com/leexhwhy/pangeo-pyinterp/internal/axis"
	"github.com/leexhwhy/pangeo-pyinterp/internal/kernel"
	"github.com/leexhwhy/pangeo-pyinterp/internal/simdops"
	"github.com/leexhwhy/pangeo-pyinterp/internal/store"
)

// Grid3D is a scalar field sampled over three axes. The third axis is
// generic over the coordinate type so the same evaluation code serves both
// an elevation/level axis (float64) and a temporal axis (int64 ticks); the
// instantiation is picked at compile time, not per query.
//
// The sample array is row-major in axis declaration order.
type Grid3D[F Float, Z axis.Number] struct {
	x, y *Axis
	z    *axis.Axis[Z]
	data *store.Dense[F]
	ops  *simdops.Ops[F]
}

// NewGrid3D builds a 3-axis grid with a float64 third axis (e.g. lon, lat,
// level). The values slice must hold len(x)*len(y)*len(z) samples; the
// grid takes ownership of it and of the axes.
func NewGrid3D[F Float](x, y, z *Axis, values []F, opts ...GridOption) (*Grid3D[F, float64], error) {
	return newGrid3D[F](x, y, z, values, opts)
}

// NewTemporalGrid3D builds a 3-axis grid whose third axis is temporal
// (e.g. lon, lat, time). Interpolating at a tick between two time slices
// produces the exact linear blend of the surrounding slices.
func NewTemporalGrid3D[F Float](x, y *Axis, z *TemporalAxis, values []F, opts ...GridOption) (*Grid3D[F, int64], error) {
	return newGrid3D[F](x, y, z, values, opts)
}

func newGrid3D[F Float, Z axis.Number](x, y *Axis, z *axis.Axis[Z], values []F, opts []GridOption) (*Grid3D[F, Z], error) {
	cfg := applyGridOptions(opts)
	data, err := store.New(values, x.Len(), y.Len(), z.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	g := &Grid3D[F, Z]{x: x, y: y, z: z, data: data, ops: simdops.For[F]()}
	if cfg.increasing {
		if !g.x.IsAscending() {
			g.x = g.x.Reversed()
			data.Flip(0)
		}
		if !g.y.IsAscending() {
			g.y = g.y.Reversed()
			data.Flip(1)
		}
		if !g.z.IsAscending() {
			g.z = g.z.Reversed()
			data.Flip(2)
		}
	}
	return g, nil
}

// X returns the first axis.
func (g *Grid3D[F, Z]) X() *Axis { return g.x }

// Y returns the second axis.
func (g *Grid3D[F, Z]) Y() *Axis { return g.y }

// Z returns the third axis.
func (g *Grid3D[F, Z]) Z() *axis.Axis[Z] { return g.z }

// Values returns the backing sample slice. Treat it as read-only.
func (g *Grid3D[F, Z]) Values() []F { return g.data.Values() }

// NDim returns 3.
func (g *Grid3D[F, Z]) NDim() int { return 3 }

// Fetch returns the sample at the given corner indices, applying the
// periodic wrap on circular axes first. An index still out of range is an
// internal invariant violation reported as ErrInternal.
func (g *Grid3D[F, Z]) Fetch(i, j, k int) (F, error) {
	v, err := g.data.Fetch(wrapIndex(g.x, i), wrapIndex(g.y, j), wrapIndex(g.z, k))
	if err != nil {
		return v, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return v, nil
}

// TrivariateAt interpolates the field at a single coordinate triple.
func (g *Grid3D[F, Z]) TrivariateAt(x, y float64, z Z, opts Options) (F, error) {
	if err := opts.Validate(); err != nil {
		return kernel.NaN[F](), err
	}
	if err := g.checkWindow(&opts); err != nil {
		return kernel.NaN[F](), err
	}
	return g.evalAt(x, y, z, &opts)
}

// Trivariate interpolates a batch of independent queries given as parallel
// coordinate arrays. Failed elements are flagged with NaN and never abort
// their siblings; evaluation fans out across Options.Workers goroutines.
func (g *Grid3D[F, Z]) Trivariate(xs, ys []float64, zs []Z, opts Options) ([]F, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("%w: coordinate arrays have lengths %d, %d and %d",
			ErrInvalidQuery, len(xs), len(ys), len(zs))
	}
	if err := g.checkWindow(&opts); err != nil {
		return nil, err
	}

	out := make([]F, len(xs))
	forEachChunk(len(xs), opts.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, err := g.evalAt(xs[i], ys[i], zs[i], &opts)
			if err != nil {
				out[i] = kernel.NaN[F]()
				continue
			}
			out[i] = v
		}
	})
	return out, nil
}

func (g *Grid3D[F, Z]) checkWindow(o *Options) error {
	if o.Kernel != Bicubic || !o.StrictWindow {
		return nil
	}
	if g.x.Len() < 4 || g.y.Len() < 4 {
		return fmt.Errorf("%w: bicubic needs 4 samples per spatial axis, grid is %dx%d",
			ErrInsufficientNeighbors, g.x.Len(), g.y.Len())
	}
	return nil
}

func (g *Grid3D[F, Z]) evalAt(qx, qy float64, qz Z, o *Options) (F, error) {
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
	bz, ok := resolveBracket(g.z, qz, o.Bounds)
	if !ok {
		return kernel.NaN[F](), fmt.Errorf("%w: z=%v outside [%v, %v]",
			ErrOutOfRange, qz, g.z.MinValue(), g.z.MaxValue())
	}

	if o.Kernel == Bicubic {
		return g.cubicAt(bx, by, bz, o), nil
	}

	// Corners in bit order: bit 0 = x, bit 1 = y, bit 2 = z.
	var c [8]F
	c[0] = g.data.At3(bx.Lo, by.Lo, bz.Lo)
	c[1] = g.data.At3(bx.Hi, by.Lo, bz.Lo)
	c[2] = g.data.At3(bx.Lo, by.Hi, bz.Lo)
	c[3] = g.data.At3(bx.Hi, by.Hi, bz.Lo)
	c[4] = g.data.At3(bx.Lo, by.Lo, bz.Hi)
	c[5] = g.data.At3(bx.Hi, by.Lo, bz.Hi)
	c[6] = g.data.At3(bx.Lo, by.Hi, bz.Hi)
	c[7] = g.data.At3(bx.Hi, by.Hi, bz.Hi)
	ts := [3]float64{bx.T, by.T, bz.T}

	switch o.Kernel {
	case Nearest:
		return kernel.Nearest(c[:], ts[:], o.fill()), nil
	case InverseDistance:
		return kernel.InverseDistance(g.ops, c[:], ts[:], o.Power, o.fill()), nil
	default:
		return kernel.Multilinear(g.ops, c[:], ts[:], o.fill()), nil
	}
}

// cubicAt applies the Catmull-Rom window on the two spatial axes and
// blends linearly between the two bracketing z slices. The third axis is
// always linear, which keeps the temporal instantiation exact between
// time slices.
func (g *Grid3D[F, Z]) cubicAt(bx, by, bz axis.Bracket, o *Options) F {
	xi, xw, xn := cubicWindow(g.x, bx)
	yi, yw, yn := cubicWindow(g.y, by)
	zi := [2]int{bz.Lo, bz.Hi}
	zw2 := kernel.LinearWeights(bz.T)
	zw := [2]float64{zw2[0], zw2[1]}
	fill := o.fill()

	var buf, wbuf, rowv [4]F
	var slabs [2]F
	for s := 0; s < 2; s++ {
		for i := 0; i < xn; i++ {
			for j := 0; j < yn; j++ {
				buf[j] = g.data.At3(xi[i], yi[j], zi[s])
			}
			rowv[i] = kernel.WeightedCombine(g.ops, buf[:yn], yw[:yn], wbuf[:yn], fill)
		}
		slabs[s] = kernel.WeightedCombine(g.ops, rowv[:xn], xw[:xn], wbuf[:xn], fill)
	}
	return kernel.WeightedCombine(g.ops, slabs[:], zw[:], wbuf[:2], fill)
}

func (g *Grid3D[F, Z]) evalAll(coords [][]float64, opts Options) ([]F, error) {
	if len(coords) != 3 {
		return nil, fmt.Errorf("%w: got %d coordinate arrays, want 3", ErrInvalidQuery, len(coords))
	}
	zs := make([]Z, len(coords[2]))
	for i, v := range coords[2] {
		zs[i] = Z(v)
	}
	return g.Trivariate(coords[0], coords[1], zs, opts)
}
