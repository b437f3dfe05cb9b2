// Package store holds the dense sample arrays backing a grid.
//
// Samples are stored row-major in axis declaration order: the last axis
// varies fastest. The store is write-once: it is filled at grid
// construction and only read afterwards, so it is safe for concurrent
// queries without locking.
package store

import (
	"errors"
	"fmt"
)

// Float is the constraint for sample precisions.
type Float interface {
	~float32 | ~float64
}

// Errors reported by the store.
var (
	// ErrShape indicates a sample array whose size does not match the
	// product of the axis lengths.
	ErrShape = errors.New("store: sample array does not match grid shape")

	// ErrIndex indicates an index outside the grid after bracket
	// resolution. This is an internal invariant violation, not a user
	// input problem.
	ErrIndex = errors.New("store: index out of range")
)

// Dense is a row-major D-dimensional sample array, D in [2, 4].
type Dense[F Float] struct {
	data   []F
	shape  []int
	stride []int
}

// New builds a dense store over data with the given shape. The data slice
// is used directly, not copied; callers hand over ownership.
func New[F Float](data []F, shape ...int) (*Dense[F], error) {
	if len(shape) < 2 || len(shape) > 4 {
		return nil, fmt.Errorf("%w: %d axes, want 2 to 4", ErrShape, len(shape))
	}
	size := 1
	for d, n := range shape {
		if n < 1 {
			return nil, fmt.Errorf("%w: axis %d has length %d", ErrShape, d, n)
		}
		size *= n
	}
	if size != len(data) {
		return nil, fmt.Errorf("%w: %d samples, shape wants %d", ErrShape, len(data), size)
	}

	stride := make([]int, len(shape))
	s := 1
	for d := len(shape) - 1; d >= 0; d-- {
		stride[d] = s
		s *= shape[d]
	}
	return &Dense[F]{
		data:   data,
		shape:  append([]int(nil), shape...),
		stride: stride,
	}, nil
}

// NDim returns the number of axes.
func (d *Dense[F]) NDim() int { return len(d.shape) }

// Shape returns the axis lengths. The returned slice is shared; treat it
// as read-only.
func (d *Dense[F]) Shape() []int { return d.shape }

// Len returns the total number of samples.
func (d *Dense[F]) Len() int { return len(d.data) }

// Values returns the backing sample slice. Treat it as read-only.
func (d *Dense[F]) Values() []F { return d.data }

// Fetch returns the sample at the given corner indices, validating every
// index. A failure here means a locator bug upstream, so it surfaces as
// ErrIndex rather than being clamped away.
func (d *Dense[F]) Fetch(idx ...int) (F, error) {
	if len(idx) != len(d.shape) {
		var zero F
		return zero, fmt.Errorf("%w: %d indices for %d axes", ErrIndex, len(idx), len(d.shape))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= d.shape[k] {
			var zero F
			return zero, fmt.Errorf("%w: axis %d index %d, length %d", ErrIndex, k, i, d.shape[k])
		}
		off += i * d.stride[k]
	}
	return d.data[off], nil
}

// At2, At3 and At4 are the hot-path accessors used by the evaluators once
// brackets are resolved. Indices have already been range-checked or
// wrapped by the locator; a stray index is clamped defensively instead of
// panicking.

// At2 returns the sample at (i, j) of a 2-axis store.
func (d *Dense[F]) At2(i, j int) F {
	i = clamp(i, d.shape[0])
	j = clamp(j, d.shape[1])
	return d.data[i*d.stride[0]+j]
}

// At3 returns the sample at (i, j, k) of a 3-axis store.
func (d *Dense[F]) At3(i, j, k int) F {
	i = clamp(i, d.shape[0])
	j = clamp(j, d.shape[1])
	k = clamp(k, d.shape[2])
	return d.data[i*d.stride[0]+j*d.stride[1]+k]
}

// At4 returns the sample at (i, j, k, l) of a 4-axis store.
func (d *Dense[F]) At4(i, j, k, l int) F {
	i = clamp(i, d.shape[0])
	j = clamp(j, d.shape[1])
	k = clamp(k, d.shape[2])
	l = clamp(l, d.shape[3])
	return d.data[i*d.stride[0]+j*d.stride[1]+k*d.stride[2]+l]
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Flip reverses the store in place along one dimension. Used when
// normalizing a grid to ascending axes together with Axis.Reversed.
func (d *Dense[F]) Flip(dim int) {
	n := d.shape[dim]
	st := d.stride[dim]
	// Iterate every element of the sub-array spanned by the other
	// dimensions and swap mirrored pairs along dim.
	outer := 1
	for k := 0; k < dim; k++ {
		outer *= d.shape[k]
	}
	inner := st // product of lengths after dim
	block := n * st
	for o := 0; o < outer; o++ {
		base := o * block
		for i := 0; i < n/2; i++ {
			a := base + i*st
			b := base + (n-1-i)*st
			for x := 0; x < inner; x++ {
				d.data[a+x], d.data[b+x] = d.data[b+x], d.data[a+x]
			}
		}
	}
}
