package axis

// Location classifies a query coordinate relative to the axis range.
type Location int8

const (
	// Inside means the query falls within the sampled range (or anywhere
	// on a circular axis, where every coordinate reduces into range).
	Inside Location = iota

	// Below means the query precedes the smallest coordinate of a
	// non-circular axis.
	Below

	// Above means the query follows the largest coordinate of a
	// non-circular axis.
	Above
)

// Bracket locates a query coordinate between two adjacent samples.
//
// Lo and Hi are indices in storage order; Hi follows Lo along the axis. On
// a circular axis the bracket may wrap, in which case Lo is the last index
// and Hi is 0. T is the fractional position of the query between the two
// samples: 0 at Lo, 1 at Hi. Inside the axis T lies in [0, 1]; for Below
// and Above brackets T is the raw linear ratio over the boundary cell, so
// it may leave [0, 1] and can be used as-is for linear extrapolation or
// clamped for constant extrapolation.
//
// Brackets are transient, query-local values; they hold no reference to
// the axis that produced them.
type Bracket struct {
	Lo, Hi   int
	T        float64
	Location Location
}

// Nearest returns the bracket index closer to the query.
func (b Bracket) Nearest() int {
	if b.T < 0.5 {
		return b.Lo
	}
	return b.Hi
}

// Inside reports whether the query fell within the axis range.
func (b Bracket) Inside() bool { return b.Location == Inside }

// Clamp limits T to [0, 1], turning an out-of-range bracket into the
// boundary sample (constant extrapolation).
func (b Bracket) Clamp() Bracket {
	if b.T < 0 {
		b.T = 0
	} else if b.T > 1 {
		b.T = 1
	}
	return b
}
