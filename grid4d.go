package pyinterp

import (
	"fmt"

	"github.com/leexhwhy/pangeo-pyinterp/internal/axis"
	"github.com/leexhwhy/pangeo-pyinterp/internal/kernel"
	"github.com/leexhwhy/pangeo-pyinterp/internal/simdops"
	"github.com/leexhwhy/pangeo-pyinterp/internal/store"
)

// Grid4D is a scalar field sampled over four axes, e.g. longitude,
// latitude, time and elevation. As with Grid3D the third axis is generic
// over the coordinate type; a datetime dimension always occupies the Z
// slot (callers with a temporal fourth dimension reorder their data so
// the tick axis comes third, mirroring how the facade normalizes axis
// order).
type Grid4D[F Float, Z axis.Number] struct {
	x, y *Axis
	z    *axis.Axis[Z]
	u    *Axis
	data *store.Dense[F]
	ops  *simdops.Ops[F]
}

// NewGrid4D builds a 4-axis grid with float64 third and fourth axes. The
// values slice must hold len(x)*len(y)*len(z)*len(u) samples; the grid
// takes ownership of it and of the axes.
func NewGrid4D[F Float](x, y, z, u *Axis, values []F, opts ...GridOption) (*Grid4D[F, float64], error) {
	return newGrid4D[F](x, y, z, u, values, opts)
}

// NewTemporalGrid4D builds a 4-axis grid whose third axis is temporal.
func NewTemporalGrid4D[F Float](x, y *Axis, z *TemporalAxis, u *Axis, values []F, opts ...GridOption) (*Grid4D[F, int64], error) {
	return newGrid4D[F](x, y, z, u, values, opts)
}

func newGrid4D[F Float, Z axis.Number](x, y *Axis, z *axis.Axis[Z], u *Axis, values []F, opts []GridOption) (*Grid4D[F, Z], error) {
	cfg := applyGridOptions(opts)
	data, err := store.New(values, x.Len(), y.Len(), z.Len(), u.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	g := &Grid4D[F, Z]{x: x, y: y, z: z, u: u, data: data, ops: simdops.For[F]()}
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
		if !g.u.IsAscending() {
			g.u = g.u.Reversed()
			data.Flip(3)
		}
	}
	return g, nil
}

// X returns the first axis.
func (g *Grid4D[F, Z]) X() *Axis { return g.x }

// Y returns the second axis.
func (g *Grid4D[F, Z]) Y() *Axis { return g.y }

// Z returns the third axis.
func (g *Grid4D[F, Z]) Z() *axis.Axis[Z] { return g.z }

// U returns the fourth axis.
func (g *Grid4D[F, Z]) U() *Axis { return g.u }

// Values returns the backing sample slice. Treat it as read-only.
func (g *Grid4D[F, Z]) Values() []F { return g.data.Values() }

// NDim returns 4.
func (g *Grid4D[F, Z]) NDim() int { return 4 }

// Fetch returns the sample at the given corner indices, applying the
// periodic wrap on circular axes first. An index still out of range is an
// internal invariant violation reported as ErrInternal.
func (g *Grid4D[F, Z]) Fetch(i, j, k, l int) (F, error) {
	v, err := g.data.Fetch(wrapIndex(g.x, i), wrapIndex(g.y, j), wrapIndex(g.z, k), wrapIndex(g.u, l))
	if err != nil {
		return v, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return v, nil
}

// QuadrivariateAt interpolates the field at a single coordinate tuple.
func (g *Grid4D[F, Z]) QuadrivariateAt(x, y float64, z Z, u float64, opts Options) (F, error) {
	if err := opts.Validate(); err != nil {
		return kernel.NaN[F](), err
	}
	if err := g.checkWindow(&opts); err != nil {
		return kernel.NaN[F](), err
	}
	return g.evalAt(x, y, z, u, &opts)
}

// Quadrivariate interpolates a batch of independent queries given as
// parallel coordinate arrays. Failed elements are flagged with NaN and
// never abort their siblings; evaluation fans out across Options.Workers
// goroutines.
func (g *Grid4D[F, Z]) Quadrivariate(xs, ys []float64, zs []Z, us []float64, opts Options) ([]F, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) || len(xs) != len(zs) || len(xs) != len(us) {
		return nil, fmt.Errorf("%w: coordinate arrays have lengths %d, %d, %d and %d",
			ErrInvalidQuery, len(xs), len(ys), len(zs), len(us))
	}
	if err := g.checkWindow(&opts); err != nil {
		return nil, err
	}

	out := make([]F, len(xs))
	forEachChunk(len(xs), opts.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, err := g.evalAt(xs[i], ys[i], zs[i], us[i], &opts)
			if err != nil {
				out[i] = kernel.NaN[F]()
				continue
			}
			out[i] = v
		}
	})
	return out, nil
}

func (g *Grid4D[F, Z]) checkWindow(o *Options) error {
	if o.Kernel != Bicubic || !o.StrictWindow {
		return nil
	}
	if g.x.Len() < 4 || g.y.Len() < 4 {
		return fmt.Errorf("%w: bicubic needs 4 samples per spatial axis, grid is %dx%d",
			ErrInsufficientNeighbors, g.x.Len(), g.y.Len())
	}
	return nil
}

func (g *Grid4D[F, Z]) evalAt(qx, qy float64, qz Z, qu float64, o *Options) (F, error) {
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
	bu, ok := resolveBracket(g.u, qu, o.Bounds)
	if !ok {
		return kernel.NaN[F](), fmt.Errorf("%w: u=%g outside [%g, %g]",
			ErrOutOfRange, qu, g.u.MinValue(), g.u.MaxValue())
	}

	if o.Kernel == Bicubic {
		return g.cubicAt(bx, by, bz, bu, o), nil
	}

	// Corners in bit order: bit 0 = x, bit 1 = y, bit 2 = z, bit 3 = u.
	var c [16]F
	for b := 0; b < 16; b++ {
		i, j := bx.Lo, by.Lo
		k, l := bz.Lo, bu.Lo
		if b&1 != 0 {
			i = bx.Hi
		}
		if b&2 != 0 {
			j = by.Hi
		}
		if b&4 != 0 {
			k = bz.Hi
		}
		if b&8 != 0 {
			l = bu.Hi
		}
		c[b] = g.data.At4(i, j, k, l)
	}
	ts := [4]float64{bx.T, by.T, bz.T, bu.T}

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
// blends linearly across the four bracketing (z, u) slabs.
func (g *Grid4D[F, Z]) cubicAt(bx, by, bz, bu axis.Bracket, o *Options) F {
	xi, xw, xn := cubicWindow(g.x, bx)
	yi, yw, yn := cubicWindow(g.y, by)
	zi := [2]int{bz.Lo, bz.Hi}
	ui := [2]int{bu.Lo, bu.Hi}
	zw2 := kernel.LinearWeights(bz.T)
	uw2 := kernel.LinearWeights(bu.T)
	fill := o.fill()

	var buf, wbuf, rowv [4]F
	var ucol [2]F
	var slabs [2]F
	for r := 0; r < 2; r++ {
		for s := 0; s < 2; s++ {
			for i := 0; i < xn; i++ {
				for j := 0; j < yn; j++ {
					buf[j] = g.data.At4(xi[i], yi[j], zi[s], ui[r])
				}
				rowv[i] = kernel.WeightedCombine(g.ops, buf[:yn], yw[:yn], wbuf[:yn], fill)
			}
			ucol[s] = kernel.WeightedCombine(g.ops, rowv[:xn], xw[:xn], wbuf[:xn], fill)
		}
		slabs[r] = kernel.WeightedCombine(g.ops, ucol[:], zw2[:], wbuf[:2], fill)
	}
	return kernel.WeightedCombine(g.ops, slabs[:], uw2[:], wbuf[:2], fill)
}

func (g *Grid4D[F, Z]) evalAll(coords [][]float64, opts Options) ([]F, error) {
	if len(coords) != 4 {
		return nil, fmt.Errorf("%w: got %d coordinate arrays, want 4", ErrInvalidQuery, len(coords))
	}
	zs := make([]Z, len(coords[2]))
	for i, v := range coords[2] {
		zs[i] = Z(v)
	}
	return g.Quadrivariate(coords[0], coords[1], zs, coords[3], opts)
}
