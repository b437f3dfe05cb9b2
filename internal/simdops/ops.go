// Package simdops provides generic SIMD operations for float32 and float64
// sample types, so the interpolation kernels can run at either precision
// from a single codebase.
//
// With Profile-Guided Optimization (Go 1.22+), the function pointer calls
// in hot paths can be devirtualized and inlined.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported sample precisions.
type Float interface {
	~float32 | ~float64
}

// Ops provides SIMD-accelerated operations for type F. Function pointers
// allow type-safe generic code while delegating to optimized type-specific
// implementations.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length, as with
	// corner weight and sample vectors of matching window size.
	DotProductUnsafe func(a, b []F) F

	// Sum returns the sum of all elements, used for weight normalization.
	Sum func(a []F) F
}

// Pre-instantiated operations for each sample precision.
var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Sum:              f32.Sum,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Sum:              f64.Sum,
	}
)

// For returns the Ops instance for type F. The type switch happens at
// instantiation time, never per query.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}
