package pyinterp

import (
	"errors"
	"fmt"

	"github.com/leexhwhy/pangeo-pyinterp/internal/kernel"
)

// Float is the constraint for sample precisions. Grids are instantiated at
// float32 or float64; float64 is the usual choice, float32 halves the
// memory footprint of large fields at the cost of precision.
type Float interface {
	~float32 | ~float64
}

// Kernel selects the interpolation strategy applied to the neighborhood of
// a query point.
type Kernel int

const (
	// Bilinear blends the 2^D bracketing corners with per-axis fractional
	// weights (bilinear, trilinear or quadrilinear depending on the grid).
	Bilinear Kernel = iota

	// Nearest returns the stored sample closest to the query, never a
	// blend.
	Nearest

	// InverseDistance weights the bracketing corners by 1/distance^p in
	// normalized cell units; p is Options.Power.
	InverseDistance

	// Bicubic uses a 4-point Catmull-Rom window on the two leading
	// spatial axes and blends linearly across any remaining axes. Axes
	// shorter than 4 samples degrade deterministically to linear unless
	// Options.StrictWindow is set.
	Bicubic
)

// String returns the kernel name as used by the command-line tools.
func (k Kernel) String() string {
	switch k {
	case Bilinear:
		return "bilinear"
	case Nearest:
		return "nearest"
	case InverseDistance:
		return "inverse_distance"
	case Bicubic:
		return "bicubic"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// BoundsPolicy decides what happens when a query falls outside the range
// of a non-circular axis. Circular axes have no outside: every coordinate
// reduces modulo the period.
type BoundsPolicy int

const (
	// Reject reports the query as out of range: single-point calls return
	// ErrOutOfRange, batch calls flag the element with NaN without
	// touching its siblings.
	Reject BoundsPolicy = iota

	// Clamp evaluates at the nearest axis boundary (constant
	// extrapolation).
	Clamp

	// Extrapolate extends the boundary cell linearly beyond the axis.
	Extrapolate
)

// String returns the policy name.
func (p BoundsPolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Clamp:
		return "clamp"
	case Extrapolate:
		return "extrapolate"
	default:
		return fmt.Sprintf("BoundsPolicy(%d)", int(p))
	}
}

// FillPolicy decides how missing samples (NaN) among the corners a kernel
// needs are treated.
type FillPolicy int

const (
	// PropagateMissing returns NaN whenever any required corner is
	// missing.
	PropagateMissing FillPolicy = iota

	// RenormalizeMissing excludes missing corners and renormalizes the
	// remaining weights. A query whose corners are all missing still
	// yields NaN.
	RenormalizeMissing
)

// String returns the policy name.
func (p FillPolicy) String() string {
	switch p {
	case PropagateMissing:
		return "propagate"
	case RenormalizeMissing:
		return "renormalize"
	default:
		return fmt.Sprintf("FillPolicy(%d)", int(p))
	}
}

// Errors returned by the engine.
var (
	// ErrConstruction indicates invalid grid construction input:
	// non-monotonic or duplicate axis coordinates, a circular axis that
	// does not span one period, or a sample array whose size does not
	// match the axes. Construction errors are always raised eagerly; no
	// partially built grid is ever observable.
	ErrConstruction = errors.New("invalid grid construction")

	// ErrInvalidQuery indicates malformed query input: mismatched
	// coordinate array lengths or invalid options.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrOutOfRange indicates a query outside a non-circular axis under
	// the Reject policy.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInsufficientNeighbors indicates a Bicubic query with
	// StrictWindow set on a grid whose spatial axes are shorter than the
	// 4-point window.
	ErrInsufficientNeighbors = errors.New("axis too short for requested kernel")

	// ErrInternal indicates a resolved index outside the backing array
	// after wrap adjustment. This is an engine bug, not a user input
	// problem; the hot path clamps defensively instead of panicking.
	ErrInternal = errors.New("internal invariant violation")
)

// Options is the per-call configuration surface. The zero value is not
// valid; start from DefaultOptions.
type Options struct {
	// Kernel selects the interpolation strategy.
	Kernel Kernel

	// Power is the inverse-distance exponent, used only by the
	// InverseDistance kernel. Must be positive.
	Power float64

	// Bounds is the out-of-range policy for non-circular axes.
	Bounds BoundsPolicy

	// Fill is the missing-sample policy.
	Fill FillPolicy

	// StrictWindow turns the Bicubic degrade-to-linear behavior on short
	// axes into an ErrInsufficientNeighbors error. The choice is made
	// once per call and applies to every element of a batch.
	StrictWindow bool

	// Workers is the number of goroutines batch calls fan out to.
	// 0 means one worker per CPU; 1 forces sequential evaluation.
	// Parallel and sequential evaluation produce identical results.
	Workers int
}

// DefaultOptions returns the defaults: bilinear interpolation, Reject
// bounds (NaN sentinel in batches), missing samples propagated, IDW power
// 2, one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Kernel: Bilinear,
		Power:  kernel.DefaultPower,
		Bounds: Reject,
		Fill:   PropagateMissing,
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.Kernel < Bilinear || o.Kernel > Bicubic {
		return fmt.Errorf("%w: unknown kernel %d", ErrInvalidQuery, int(o.Kernel))
	}
	if o.Bounds < Reject || o.Bounds > Extrapolate {
		return fmt.Errorf("%w: unknown bounds policy %d", ErrInvalidQuery, int(o.Bounds))
	}
	if o.Fill < PropagateMissing || o.Fill > RenormalizeMissing {
		return fmt.Errorf("%w: unknown fill policy %d", ErrInvalidQuery, int(o.Fill))
	}
	if o.Kernel == InverseDistance && o.Power <= 0 {
		return fmt.Errorf("%w: inverse-distance power must be positive, got %g", ErrInvalidQuery, o.Power)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidQuery, o.Workers)
	}
	return nil
}

// fill maps the public policy onto the kernel package's enum.
func (o *Options) fill() kernel.Fill {
	if o.Fill == RenormalizeMissing {
		return kernel.Renormalize
	}
	return kernel.Propagate
}
