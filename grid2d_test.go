package pyinterp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leexhwhy/pangeo-pyinterp/internal/testutil"
)

// planeGrid2D builds a grid sampling f(x,y) = a*x + b*y + c over
// non-circular axes. Bilinear interpolation reproduces such a field
// exactly, which makes it the oracle for most 2D tests.
func planeGrid2D(t *testing.T, xs, ys []float64, a, b, c float64) *Grid2D[float64] {
	t.Helper()
	x, err := NewAxis(xs)
	require.NoError(t, err)
	y, err := NewAxis(ys)
	require.NoError(t, err)
	g, err := NewGrid2D(x, y, testutil.PlaneField(xs, ys, a, b, c))
	require.NoError(t, err)
	return g
}

func TestNewGrid2DShapeMismatch(t *testing.T) {
	x, err := NewAxis([]float64{0, 1, 2})
	require.NoError(t, err)
	y, err := NewAxis([]float64{0, 1})
	require.NoError(t, err)

	_, err = NewGrid2D(x, y, make([]float64, 5))
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestBivariateRoundTrip(t *testing.T) {
	// Every kernel must reproduce the stored samples when queried at the
	// grid coordinates themselves.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{-2, -1, 0, 1, 2}
	g := planeGrid2D(t, xs, ys, 1.5, -0.5, 2)

	for _, k := range []Kernel{Bilinear, Nearest, InverseDistance, Bicubic} {
		opts := DefaultOptions()
		opts.Kernel = k
		for i, xv := range xs {
			for j, yv := range ys {
				got, err := g.BivariateAt(xv, yv, opts)
				require.NoError(t, err, "kernel=%v", k)
				want := g.Values()[i*len(ys)+j]
				assert.InDelta(t, want, got, 1e-12, "kernel=%v x=%v y=%v", k, xv, yv)
			}
		}
	}
}

func TestBivariatePlaneReproduction(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 1, 2, 3}, []float64{0, 2, 4}, 2, 3, 1)

	for _, q := range [][2]float64{{0.5, 1}, {1.25, 3.5}, {2.9, 0.1}} {
		got, err := g.BivariateAt(q[0], q[1], DefaultOptions())
		require.NoError(t, err)
		assert.InDelta(t, 2*q[0]+3*q[1]+1, got, 1e-12, "q=%v", q)
	}
}

func TestBivariateCircularSeam(t *testing.T) {
	// A field sampled at four longitudes; querying inside the cell that
	// wraps from the last sample back to the first must blend across the
	// seam with the period-adjusted fraction.
	lon, err := NewCircularAxis([]float64{0, 90, 180, 270}, PeriodDegrees)
	require.NoError(t, err)
	lat, err := NewAxis([]float64{0})
	require.NoError(t, err)
	g, err := NewGrid2D(lon, lat, []float64{10, 20, 30, 5})
	require.NoError(t, err)

	got, err := g.BivariateAt(315, 0, DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 7.5, got, 1e-12)

	// The same query shifted by whole periods gives the same answer.
	for _, k := range []float64{-360, 360, 720} {
		shifted, err := g.BivariateAt(315+k, 0, DefaultOptions())
		require.NoError(t, err)
		assert.InDelta(t, got, shifted, 1e-12, "shift=%v", k)
	}
}

func TestBivariateBoundsPolicies(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 1, 2}, []float64{0, 1, 2}, 1, 1, 0)
	beyond := 12.0 // 10 units past the last y coordinate

	t.Run("reject", func(t *testing.T) {
		opts := DefaultOptions()
		_, err := g.BivariateAt(1, beyond, opts)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("clamp", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Bounds = Clamp
		got, err := g.BivariateAt(1, beyond, opts)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, got, 1e-12) // f(1, 2), the boundary value
	})

	t.Run("extrapolate", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Bounds = Extrapolate
		got, err := g.BivariateAt(1, beyond, opts)
		require.NoError(t, err)
		assert.InDelta(t, 13.0, got, 1e-12) // the plane continued
	})
}

func TestBivariateMissingSamples(t *testing.T) {
	x, err := NewAxis([]float64{0, 1})
	require.NoError(t, err)
	y, err := NewAxis([]float64{0, 1})
	require.NoError(t, err)
	g, err := NewGrid2D(x, y, []float64{4, 4, math.NaN(), 4})
	require.NoError(t, err)

	t.Run("propagate", func(t *testing.T) {
		got, err := g.BivariateAt(0.5, 0.5, DefaultOptions())
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})

	t.Run("renormalize", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Fill = RenormalizeMissing
		got, err := g.BivariateAt(0.5, 0.5, opts)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got, 1e-12)
	})

	t.Run("clean cell unaffected", func(t *testing.T) {
		// A missing sample only poisons the cells it is a corner of.
		wx, err := NewAxis([]float64{0, 1, 2})
		require.NoError(t, err)
		wy, err := NewAxis([]float64{0, 1})
		require.NoError(t, err)
		wide, err := NewGrid2D(wx, wy, []float64{math.NaN(), 4, 4, 4, 4, 4})
		require.NoError(t, err)

		got, err := wide.BivariateAt(1.5, 0.5, DefaultOptions())
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got, 1e-12)
	})
}

func TestBivariateNearest(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 10, 20}, []float64{0, 10}, 1, 1, 0)
	opts := DefaultOptions()
	opts.Kernel = Nearest

	got, err := g.BivariateAt(12, 3, opts)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got) // sample at (10, 0)

	got, err = g.BivariateAt(17, 8, opts)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got) // sample at (20, 10)
}

func TestBivariateInverseDistance(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 1}, []float64{0, 1}, 0, 0, 0)
	// Overwrite the flat field with distinct corners.
	copy(g.Values(), []float64{10, 20, 30, 40})

	opts := DefaultOptions()
	opts.Kernel = InverseDistance

	// Cell center: all corners equidistant, plain mean.
	got, err := g.BivariateAt(0.5, 0.5, opts)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, got, 1e-12)

	// Exact node short-circuits to the stored sample.
	got, err = g.BivariateAt(1, 0, opts)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)
}

func TestBivariateBicubic(t *testing.T) {
	// Catmull-Rom reproduces cubic polynomials on interior windows, so a
	// separable quadratic field is an exact oracle away from the edges.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{0, 1, 2, 3, 4, 5}
	f := func(x, y float64) float64 { return x*x + 2*y*y - x*y + 3 }
	values := make([]float64, len(xs)*len(ys))
	for i, xv := range xs {
		for j, yv := range ys {
			values[i*len(ys)+j] = f(xv, yv)
		}
	}
	x, err := NewAxis(xs)
	require.NoError(t, err)
	y, err := NewAxis(ys)
	require.NoError(t, err)
	g, err := NewGrid2D(x, y, values)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Kernel = Bicubic
	for _, q := range [][2]float64{{1.5, 2.5}, {2.25, 1.75}, {3.9, 2.1}} {
		got, err := g.BivariateAt(q[0], q[1], opts)
		require.NoError(t, err)
		assert.InDelta(t, f(q[0], q[1]), got, 1e-10, "q=%v", q)
	}
}

func TestBivariateBicubicShortAxis(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 1, 2}, []float64{0, 1, 2}, 2, -1, 5)

	t.Run("degrades to linear", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Kernel = Bicubic
		got, err := g.BivariateAt(0.5, 1.5, opts)
		require.NoError(t, err)

		opts.Kernel = Bilinear
		want, err := g.BivariateAt(0.5, 1.5, opts)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	})

	t.Run("strict window errors", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Kernel = Bicubic
		opts.StrictWindow = true

		_, err := g.BivariateAt(0.5, 1.5, opts)
		assert.ErrorIs(t, err, ErrInsufficientNeighbors)

		_, err = g.Bivariate([]float64{0.5}, []float64{1.5}, opts)
		assert.ErrorIs(t, err, ErrInsufficientNeighbors)
	})
}

func TestBivariateBatch(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, 1, 2, 0)

	t.Run("length mismatch", func(t *testing.T) {
		_, err := g.Bivariate([]float64{1, 2}, []float64{1}, DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidQuery)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := g.Bivariate(nil, nil, DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("element isolation", func(t *testing.T) {
		// One rejected element is flagged with NaN; its siblings are
		// evaluated normally.
		xs := []float64{0.5, 99, 1.5}
		ys := []float64{0.5, 0.5, 1.5}
		out, err := g.Bivariate(xs, ys, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.InDelta(t, 1.5, out[0], 1e-12)
		assert.True(t, math.IsNaN(out[1]))
		assert.InDelta(t, 4.5, out[2], 1e-12)
	})
}

func TestBivariateParallelMatchesSequential(t *testing.T) {
	xs := make([]float64, 2000)
	ys := make([]float64, 2000)
	rng := rand.New(rand.NewSource(42))
	for i := range xs {
		xs[i] = rng.Float64() * 3
		ys[i] = rng.Float64() * 3
	}
	g := planeGrid2D(t, []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, 1.25, -2, 0.5)

	for _, k := range []Kernel{Bilinear, Nearest, InverseDistance, Bicubic} {
		seq := DefaultOptions()
		seq.Kernel = k
		seq.Workers = 1
		want, err := g.Bivariate(xs, ys, seq)
		require.NoError(t, err)
		testutil.AssertNoNaNOrInf(t, want, "kernel=%v", k)
		// All kernels stay within the field's range on a linear field.
		testutil.AssertAllInRange(t, want, -5.5, 4.25, "kernel=%v", k)

		par := seq
		par.Workers = 8
		got, err := g.Bivariate(xs, ys, par)
		require.NoError(t, err)
		assert.Equal(t, want, got, "kernel=%v", k)
	}
}

func TestGrid2DIncreasingAxes(t *testing.T) {
	// Same field stored with a descending latitude axis; with the
	// normalization option the axis is reversed, the data flipped, and
	// queries agree with the as-stored orientation.
	xs := []float64{0, 1, 2}
	ysDesc := []float64{4, 2, 0}
	values := testutil.PlaneField(xs, ysDesc, 3, -1, 2)

	build := func(t *testing.T, opts ...GridOption) *Grid2D[float64] {
		t.Helper()
		x, err := NewAxis(xs)
		require.NoError(t, err)
		y, err := NewAxis(ysDesc)
		require.NoError(t, err)
		g, err := NewGrid2D(x, y, append([]float64(nil), values...), opts...)
		require.NoError(t, err)
		return g
	}

	asStored := build(t)
	normalized := build(t, IncreasingAxes())
	require.False(t, asStored.Y().IsAscending())
	require.True(t, normalized.Y().IsAscending())

	for _, q := range [][2]float64{{0.5, 1}, {1.5, 3}, {2, 0}} {
		a, err := asStored.BivariateAt(q[0], q[1], DefaultOptions())
		require.NoError(t, err)
		b, err := normalized.BivariateAt(q[0], q[1], DefaultOptions())
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-12, "q=%v", q)
		assert.InDelta(t, 3*q[0]-q[1]+2, a, 1e-12, "q=%v", q)
	}
}

func TestGrid2DFloat32(t *testing.T) {
	x, err := NewAxis([]float64{0, 1, 2})
	require.NoError(t, err)
	y, err := NewAxis([]float64{0, 1})
	require.NoError(t, err)
	values := []float32{0, 1, 2, 3, 4, 5}
	g, err := NewGrid2D(x, y, values)
	require.NoError(t, err)

	got, err := g.BivariateAt(0.5, 0.5, DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, float64(got), testutil.Float32Tolerance)

	batch, err := g.Bivariate([]float64{0, 2}, []float64{0, 1}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 5}, batch)
}

func TestGrid2DFetch(t *testing.T) {
	lon, err := NewCircularAxis([]float64{0, 90, 180, 270}, PeriodDegrees)
	require.NoError(t, err)
	lat, err := NewAxis([]float64{0, 1})
	require.NoError(t, err)
	g, err := NewGrid2D(lon, lat, testutil.Sequence(8))
	require.NoError(t, err)

	// Circular axis indices wrap.
	v, err := g.Fetch(4, 0)
	require.NoError(t, err)
	assert.Equal(t, g.Values()[0], v)

	v, err = g.Fetch(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, g.Values()[3*2+1], v)

	// Non-circular indices do not; out of range is an internal error.
	_, err = g.Fetch(0, 2)
	assert.ErrorIs(t, err, ErrInternal)
}
