// Package kernel implements the interpolation kernels: nearest,
// multilinear, inverse-distance weighting, and cubic blends.
//
// Kernels are pure functions over a kernel context: the corner samples
// gathered by a grid plus the per-axis fractional offsets produced by the
// cell locator. Corner slices use bit order: bit d of the corner index
// selects the upper bracket sample on axis d, so a D-dimensional cell has
// 2^D corners. Offsets are normalized cell units; on circular axes they
// are already period-adjusted by the locator, so no wrap handling happens
// here.
package kernel

import (
	"math"

	"github.com/leexhwhy/pangeo-pyinterp/internal/simdops"
)

// Float is the constraint for sample precisions.
type Float = simdops.Float

// Fill selects the treatment of missing (NaN) samples among the corners
// a kernel needs.
type Fill int8

const (
	// Propagate returns NaN whenever any required corner is missing.
	Propagate Fill = iota

	// Renormalize excludes missing corners and renormalizes the weights
	// of the remaining ones. If every corner is missing the result is NaN.
	Renormalize
)

// NaN returns the missing-value sentinel at precision F.
func NaN[F Float]() F {
	return F(math.NaN())
}

// IsNaN reports whether v is the missing-value sentinel.
func IsNaN[F Float](v F) bool {
	return v != v
}

func hasMissing[F Float](vals []F) bool {
	for _, v := range vals {
		if IsNaN(v) {
			return true
		}
	}
	return false
}

// Lerp returns the linear blend (1-t)*a + t*b. The two-sided form keeps
// the result exactly a at t=0 and exactly b at t=1.
func Lerp[F Float](a, b F, t float64) F {
	return F(1-t)*a + F(t)*b
}

// WeightedCombine blends vals with the given weights, honoring the missing
// sample policy. vals and ws must have equal length (at most the cubic
// window size). The wbuf scratch receives the weights at precision F so
// the clean path can run as a single SIMD dot product.
func WeightedCombine[F Float](ops *simdops.Ops[F], vals []F, ws []float64, wbuf []F, fill Fill) F {
	if !hasMissing(vals) {
		for i, w := range ws {
			wbuf[i] = F(w)
		}
		return ops.DotProductUnsafe(wbuf[:len(vals)], vals)
	}
	if fill == Propagate {
		return NaN[F]()
	}
	var num, den float64
	for i, v := range vals {
		if IsNaN(v) {
			continue
		}
		num += ws[i] * float64(v)
		den += ws[i]
	}
	if den == 0 {
		return NaN[F]()
	}
	return F(num / den)
}
