package axis

import "math"

// Locate resolves the bracketing sample pair and fractional offset for a
// query coordinate. It is a pure function over the axis: it reads no sample
// data and allocates nothing.
//
// On a circular axis every query reduces into range, so Location is always
// Inside. On a non-circular axis an out-of-range query returns the boundary
// cell with the raw linear ratio in T and Location set to Below or Above;
// the caller decides whether to reject, clamp, or extrapolate.
//
// A single-sample axis always resolves to that sample with T = 0.
func (a *Axis[T]) Locate(q T) Bracket {
	if a.n == 1 {
		return Bracket{Lo: 0, Hi: 0, T: 0, Location: Inside}
	}
	if a.circular {
		return a.locateCircular(float64(q))
	}

	switch {
	case q < a.MinValue():
		if a.ascending {
			return Bracket{Lo: 0, Hi: 1, T: a.frac(0, q), Location: Below}
		}
		return Bracket{Lo: a.n - 2, Hi: a.n - 1, T: a.frac(a.n-2, q), Location: Below}
	case q > a.MaxValue():
		if a.ascending {
			return Bracket{Lo: a.n - 2, Hi: a.n - 1, T: a.frac(a.n-2, q), Location: Above}
		}
		return Bracket{Lo: 0, Hi: 1, T: a.frac(0, q), Location: Above}
	}

	i := a.search(q)
	return Bracket{Lo: i, Hi: i + 1, T: a.frac(i, q), Location: Inside}
}

// frac is the linear ratio of q across cell i. For integer (temporal) axes
// the differences are exact, so the ratio is the exact tick blend.
func (a *Axis[T]) frac(i int, q T) float64 {
	v0, v1 := a.values[i], a.values[i+1]
	return float64(q-v0) / float64(v1-v0)
}

// search returns the cell index i such that q lies between values[i] and
// values[i+1], in O(1) for regular axes and by binary search otherwise.
// Both paths use the same convention: the largest cell whose lower edge
// does not follow q, capped at the final cell.
func (a *Axis[T]) search(q T) int {
	if !a.regular {
		return a.searchBinary(q)
	}
	i := int(math.Floor((float64(q) - float64(a.values[0])) / a.step))
	if i < 0 {
		i = 0
	} else if i > a.n-2 {
		i = a.n - 2
	}
	// Float rounding can land the estimate one cell off; nudge until the
	// cell contains q under the same convention as searchBinary.
	for i > 0 && a.before(q, a.values[i]) {
		i--
	}
	for i < a.n-2 && !a.before(q, a.values[i+1]) {
		i++
	}
	return i
}

// before reports whether q precedes v along the axis direction.
func (a *Axis[T]) before(q, v T) bool {
	if a.ascending {
		return q < v
	}
	return q > v
}

// searchBinary is the generic O(log n) locator over the coordinate
// sequence. It is also the reference implementation the regular fast path
// is tested against.
func (a *Axis[T]) searchBinary(q T) int {
	lo, hi := 0, a.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if a.before(q, a.values[mid]) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// locateCircular reduces the query modulo the period and resolves it
// either within the sampled span or inside the wrap cell joining the last
// sample back to the first.
func (a *Axis[T]) locateCircular(q float64) Bracket {
	vmin := float64(a.MinValue())
	vmax := float64(a.MaxValue())
	qw := Wrap(q, vmin, a.period)
	if qw <= vmax {
		// Circular axes hold float64 coordinates (enforced at
		// construction), so the conversion is lossless.
		i := a.search(T(qw))
		return Bracket{Lo: i, Hi: i + 1, T: a.frac(i, T(qw)), Location: Inside}
	}

	// Wrap cell: the fractional offset is the period-adjusted distance
	// from the last sample, not a raw subtraction across the seam.
	last := float64(a.values[a.n-1])
	var dist float64
	if a.ascending {
		dist = Forward(last, qw, a.period)
	} else {
		dist = Forward(qw, last, a.period)
	}
	return Bracket{Lo: a.n - 1, Hi: 0, T: dist / a.wrapWidth, Location: Inside}
}
