package kernel

// Nearest picks the corner whose per-axis offsets round to it. The result
// is always one of the stored samples, never a blend. Under Renormalize a
// missing nearest corner falls back to the closest corner that is present;
// under Propagate the missing sentinel is returned as-is.
func Nearest[F Float](corners []F, ts []float64, fill Fill) F {
	idx := 0
	for d, t := range ts {
		if t >= 0.5 {
			idx |= 1 << d
		}
	}
	v := corners[idx]
	if !IsNaN(v) || fill == Propagate {
		return v
	}

	best := NaN[F]()
	bestDist := 0.0
	for c, cv := range corners {
		if IsNaN(cv) {
			continue
		}
		d2 := cornerDistSq(c, ts)
		if IsNaN(best) || d2 < bestDist {
			best, bestDist = cv, d2
		}
	}
	return best
}

// cornerDistSq is the squared distance from the query to corner c in
// normalized cell units.
func cornerDistSq(c int, ts []float64) float64 {
	var d2 float64
	for d, t := range ts {
		delta := t
		if c&(1<<d) != 0 {
			delta = t - 1
		}
		d2 += delta * delta
	}
	return d2
}
