package pyinterp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, Bilinear, opts.Kernel)
	assert.Equal(t, Reject, opts.Bounds)
	assert.Equal(t, PropagateMissing, opts.Fill)
	assert.Equal(t, 2.0, opts.Power)
	assert.Equal(t, 0, opts.Workers)
	assert.False(t, opts.StrictWindow)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"unknown kernel", func(o *Options) { o.Kernel = Kernel(99) }},
		{"negative kernel", func(o *Options) { o.Kernel = Kernel(-1) }},
		{"unknown bounds", func(o *Options) { o.Bounds = BoundsPolicy(5) }},
		{"unknown fill", func(o *Options) { o.Fill = FillPolicy(-2) }},
		{"zero idw power", func(o *Options) { o.Kernel = InverseDistance; o.Power = 0 }},
		{"negative workers", func(o *Options) { o.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			assert.ErrorIs(t, opts.Validate(), ErrInvalidQuery)
		})
	}

	// Power is ignored by kernels that do not use it.
	opts := DefaultOptions()
	opts.Power = 0
	assert.NoError(t, opts.Validate())
}

func TestOptionsValidateSurfacesEverywhere(t *testing.T) {
	g := planeGrid2D(t, []float64{0, 1}, []float64{0, 1}, 1, 1, 0)
	bad := DefaultOptions()
	bad.Kernel = Kernel(42)

	_, err := g.BivariateAt(0.5, 0.5, bad)
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = g.Bivariate([]float64{0.5}, []float64{0.5}, bad)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "bilinear", Bilinear.String())
	assert.Equal(t, "nearest", Nearest.String())
	assert.Equal(t, "inverse_distance", InverseDistance.String())
	assert.Equal(t, "bicubic", Bicubic.String())

	assert.Equal(t, "reject", Reject.String())
	assert.Equal(t, "clamp", Clamp.String())
	assert.Equal(t, "extrapolate", Extrapolate.String())

	assert.Equal(t, "propagate", PropagateMissing.String())
	assert.Equal(t, "renormalize", RenormalizeMissing.String())
}
