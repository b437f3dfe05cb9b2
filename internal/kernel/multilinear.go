package kernel

import "github.com/leexhwhy/pangeo-pyinterp/internal/simdops"

// Multilinear computes the bilinear/trilinear/quadrilinear blend of the
// 2^D corner samples. When every corner is present it collapses one axis
// at a time, which is numerically equivalent to the direct 2^D-term
// weighted sum but cheaper; with missing corners it falls back to the
// explicit weighted sum so the fill policy can apply. corners is scratch
// space and is overwritten.
//
// Offsets outside [0, 1] extrapolate linearly through the boundary cell,
// which is how the clamp/extrapolate bounds policies are realized.
func Multilinear[F Float](ops *simdops.Ops[F], corners []F, ts []float64, fill Fill) F {
	if hasMissing(corners) {
		return multilinearSum(corners, ts, fill)
	}
	half := len(corners) / 2
	for d := len(ts) - 1; d >= 0; d-- {
		t := ts[d]
		for i := 0; i < half; i++ {
			corners[i] = Lerp(corners[i], corners[i+half], t)
		}
		half /= 2
	}
	return corners[0]
}

// multilinearSum is the 2^D-term weighted sum with per-corner weights
// Π over axes of t or (1-t), excluding missing corners per the policy.
func multilinearSum[F Float](corners []F, ts []float64, fill Fill) F {
	if fill == Propagate {
		return NaN[F]()
	}
	var num, den float64
	for c, v := range corners {
		if IsNaN(v) {
			continue
		}
		w := 1.0
		for d, t := range ts {
			if c&(1<<d) != 0 {
				w *= t
			} else {
				w *= 1 - t
			}
		}
		num += w * float64(v)
		den += w
	}
	if den == 0 {
		return NaN[F]()
	}
	return F(num / den)
}
