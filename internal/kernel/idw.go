package kernel

import (
	"math"

	"github.com/leexhwhy/pangeo-pyinterp/internal/simdops"
)

// DefaultPower is the inverse-distance exponent used when the caller does
// not override it.
const DefaultPower = 2.0

// InverseDistance weights the 2^D corner samples by 1/distance^power in
// normalized cell units. A query coinciding with a corner short-circuits
// to that corner's sample, avoiding the division by zero; a query close
// enough that the weight overflows precision F is treated the same way,
// since an infinite weight dominates every other corner.
func InverseDistance[F Float](ops *simdops.Ops[F], corners []F, ts []float64, power float64, fill Fill) F {
	var ws [1 << 4]F
	n := len(corners)
	for c := 0; c < n; c++ {
		d2 := cornerDistSq(c, ts)
		if d2 == 0 {
			return corners[c]
		}
		ws[c] = F(1 / math.Pow(math.Sqrt(d2), power))
		if math.IsInf(float64(ws[c]), 0) {
			return corners[c]
		}
	}

	if hasMissing(corners) {
		if fill == Propagate {
			return NaN[F]()
		}
		for c, v := range corners {
			if IsNaN(v) {
				ws[c] = 0
				corners[c] = 0
			}
		}
	}

	den := ops.Sum(ws[:n])
	if den == 0 {
		return NaN[F]()
	}
	return ops.DotProductUnsafe(ws[:n], corners) / den
}
