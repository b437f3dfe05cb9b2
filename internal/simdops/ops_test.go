package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/simd/f64"
)

func TestForReturnsSharedInstance(t *testing.T) {
	assert.Same(t, For[float64](), For[float64]())
	assert.Same(t, For[float32](), For[float32]())
}

func TestOpsFloat64(t *testing.T) {
	ops := For[float64]()

	a := []float64{1, 2, 3, 4}
	b := []float64{0.5, 0.25, 0.125, 0.0625}
	assert.InDelta(t, 1.625, ops.DotProductUnsafe(a, b), 1e-14)
	assert.InDelta(t, 10.0, ops.Sum(a), 1e-14)
}

func TestOpsFloat32(t *testing.T) {
	ops := For[float32]()

	a := []float32{1, 2, 3, 4}
	b := []float32{1, 1, 1, 1}
	assert.InDelta(t, 10.0, float64(ops.DotProductUnsafe(a, b)), 1e-6)
	assert.InDelta(t, 10.0, float64(ops.Sum(a)), 1e-6)
}

// The evaluators call through function pointers with tiny slices (4 for a
// cubic window row, 16 for a 4D corner set). These benchmarks track the
// indirection overhead at those sizes against the direct calls.

func BenchmarkDotProductDirect(b *testing.B) {
	for _, n := range []int{4, 16} {
		b.Run(sizeName(n), func(b *testing.B) {
			x := make([]float64, n)
			y := make([]float64, n)
			for i := range x {
				x[i] = float64(i) * 0.01
				y[i] = float64(i) * 0.02
			}
			b.ReportAllocs()
			for b.Loop() {
				_ = f64.DotProductUnsafe(x, y)
			}
		})
	}
}

func BenchmarkDotProductIndirect(b *testing.B) {
	ops := For[float64]()
	for _, n := range []int{4, 16} {
		b.Run(sizeName(n), func(b *testing.B) {
			x := make([]float64, n)
			y := make([]float64, n)
			for i := range x {
				x[i] = float64(i) * 0.01
				y[i] = float64(i) * 0.02
			}
			b.ReportAllocs()
			for b.Loop() {
				_ = ops.DotProductUnsafe(x, y)
			}
		})
	}
}

func sizeName(n int) string {
	if n == 4 {
		return "len4"
	}
	return "len16"
}
