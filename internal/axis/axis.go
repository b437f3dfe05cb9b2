// Package axis models a single coordinate dimension of a structured grid.
//
// An Axis is an immutable, strictly monotonic sequence of coordinate values.
// Regularly spaced axes are detected at construction and located in O(1);
// irregular axes fall back to binary search. A circular axis (longitude)
// wraps its last sample back to the first, one period away, so queries are
// reduced modulo the period before lookup.
package axis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Number is the constraint for axis coordinate types. Spatial axes use
// float64 coordinates; temporal axes use int64 tick counts.
type Number interface {
	~float64 | ~int64
}

// spacingTol is the relative tolerance used when deciding whether an axis is
// regularly spaced and whether a circular axis spans one full period.
const spacingTol = 1e-6

// Construction errors. Callers wrap these into the engine's error taxonomy.
var (
	// ErrEmpty indicates an axis with no coordinates.
	ErrEmpty = errors.New("axis: need at least one coordinate")

	// ErrMonotonic indicates duplicate or out-of-order coordinates.
	ErrMonotonic = errors.New("axis: coordinates must be strictly monotonic")

	// ErrPeriod indicates a circular axis whose samples do not cover one period.
	ErrPeriod = errors.New("axis: circular axis must span one period")

	// ErrCircularKind indicates circular mode on an integer (temporal) axis.
	ErrCircularKind = errors.New("axis: circular mode requires floating-point coordinates")
)

// Axis is one coordinate dimension of a structured grid. Axes are immutable
// after construction and safe for concurrent readers.
//
// Coordinates may be ascending or descending; the locator is direction
// aware, so callers that want ascending axes only (to keep sample arrays in
// a canonical orientation) should reverse descending axes together with
// their data before building a grid.
type Axis[T Number] struct {
	values []T
	n      int

	// Regular spacing fast path. step is the signed per-cell delta in
	// storage order; it is only meaningful when regular is true.
	step    float64
	regular bool

	// Circular (periodic) axes. wrapWidth is the width of the cell joining
	// the last sample back to the first: period minus the sampled span.
	circular  bool
	period    float64
	wrapWidth float64

	ascending bool
}

// Option configures axis construction.
type Option func(*axisConfig)

type axisConfig struct {
	circular bool
	period   float64
}

// Circular marks the axis as periodic with the given period length,
// e.g. 360 for a longitude axis in degrees. Only floating-point axes may
// be circular.
func Circular(period float64) Option {
	return func(c *axisConfig) {
		c.circular = true
		c.period = period
	}
}

// New builds an axis from a coordinate sequence. The sequence must be
// strictly monotonic (ascending or descending); duplicates are rejected.
// The input slice is copied, so the caller may reuse it.
//
// A circular axis must additionally cover exactly one period: the sampled
// span plus the wrap cell equals the period. For regularly spaced axes this
// is checked as n*step == period within tolerance.
func New[T Number](values []T, opts ...Option) (*Axis[T], error) {
	var cfg axisConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(values)
	if n == 0 {
		return nil, ErrEmpty
	}

	a := &Axis[T]{
		values:    append([]T(nil), values...),
		n:         n,
		ascending: true,
	}

	if n >= 2 {
		a.ascending = values[1] > values[0]
		for i := 1; i < n; i++ {
			d := values[i] - values[i-1]
			if d == 0 || (d > 0) != a.ascending {
				return nil, fmt.Errorf("%w: values[%d]=%v, values[%d]=%v",
					ErrMonotonic, i-1, values[i-1], i, values[i])
			}
		}
		a.detectRegular()
	}

	if cfg.circular {
		if !isFloat[T]() {
			return nil, ErrCircularKind
		}
		if err := a.initCircular(cfg.period); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// detectRegular checks for constant spacing and records the step.
func (a *Axis[T]) detectRegular() {
	step := (float64(a.values[a.n-1]) - float64(a.values[0])) / float64(a.n-1)
	for i := 1; i < a.n; i++ {
		d := float64(a.values[i]) - float64(a.values[i-1])
		if !scalar.EqualWithinAbsOrRel(d, step, math.Abs(step)*spacingTol, spacingTol) {
			return
		}
	}
	a.step = step
	a.regular = true
}

func (a *Axis[T]) initCircular(period float64) error {
	if period <= 0 {
		return fmt.Errorf("%w: period %g", ErrPeriod, period)
	}
	span := math.Abs(float64(a.values[a.n-1]) - float64(a.values[0]))
	if span >= period {
		return fmt.Errorf("%w: span %g exceeds period %g", ErrPeriod, span, period)
	}
	if a.regular && !scalar.EqualWithinAbsOrRel(
		span+math.Abs(a.step), period, period*spacingTol, spacingTol) {
		return fmt.Errorf("%w: span %g + step %g does not close period %g",
			ErrPeriod, span, math.Abs(a.step), period)
	}
	a.circular = true
	a.period = period
	a.wrapWidth = period - span
	return nil
}

// isFloat reports whether T is a floating-point coordinate type. The type
// switch runs at construction only, never on the query path.
func isFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float64:
		return true
	default:
		return false
	}
}

// Len returns the number of samples on the axis.
func (a *Axis[T]) Len() int { return a.n }

// IsRegular reports whether the axis has constant spacing.
func (a *Axis[T]) IsRegular() bool { return a.regular }

// Step returns the signed per-cell spacing in storage order, or 0 for an
// irregular axis.
func (a *Axis[T]) Step() float64 { return a.step }

// IsCircular reports whether the axis is periodic.
func (a *Axis[T]) IsCircular() bool { return a.circular }

// Period returns the period length of a circular axis, or 0.
func (a *Axis[T]) Period() float64 { return a.period }

// IsAscending reports whether coordinates increase with index.
func (a *Axis[T]) IsAscending() bool { return a.ascending }

// Value returns the coordinate at index i.
func (a *Axis[T]) Value(i int) T { return a.values[i] }

// Front returns the first coordinate in storage order.
func (a *Axis[T]) Front() T { return a.values[0] }

// Back returns the last coordinate in storage order.
func (a *Axis[T]) Back() T { return a.values[a.n-1] }

// MinValue returns the smallest coordinate on the axis.
func (a *Axis[T]) MinValue() T {
	if a.ascending {
		return a.values[0]
	}
	return a.values[a.n-1]
}

// MaxValue returns the largest coordinate on the axis.
func (a *Axis[T]) MaxValue() T {
	if a.ascending {
		return a.values[a.n-1]
	}
	return a.values[0]
}

// Reversed returns a new axis with the coordinate order flipped. Used when
// normalizing a grid to ascending axes; the caller must flip the sample
// array along the matching dimension.
func (a *Axis[T]) Reversed() *Axis[T] {
	rev := make([]T, a.n)
	for i, v := range a.values {
		rev[a.n-1-i] = v
	}
	var opts []Option
	if a.circular {
		opts = append(opts, Circular(a.period))
	}
	// The reversed sequence of a valid axis is always valid.
	out, err := New(rev, opts...)
	if err != nil {
		panic(fmt.Sprintf("axis: reversing valid axis failed: %v", err))
	}
	return out
}

// Index returns the index of the sample nearest to q, clamped to the axis
// for out-of-range queries on non-circular axes.
func (a *Axis[T]) Index(q T) int {
	return a.Locate(q).Clamp().Nearest()
}

// Window4 returns the four sample indices centered on the bracket's cell,
// for cubic kernels. Indices wrap on circular axes and are clamped (edge
// samples repeated) otherwise. ok is false when the axis is shorter than
// the window.
func (a *Axis[T]) Window4(b Bracket) ([4]int, bool) {
	if a.n < 4 {
		return [4]int{}, false
	}
	idx := [4]int{b.Lo - 1, b.Lo, b.Lo + 1, b.Lo + 2}
	for k := range idx {
		if a.circular {
			idx[k] = ((idx[k] % a.n) + a.n) % a.n
		} else if idx[k] < 0 {
			idx[k] = 0
		} else if idx[k] >= a.n {
			idx[k] = a.n - 1
		}
	}
	return idx, true
}
