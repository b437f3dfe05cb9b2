package pyinterp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leexhwhy/pangeo-pyinterp/internal/testutil"
)

func TestNewAxisErrors(t *testing.T) {
	_, err := NewAxis(nil)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = NewAxis([]float64{0, 1, 1})
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = NewCircularAxis([]float64{0, 200, 400}, 360)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = NewTemporalAxis([]int64{10, 5})
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewUniformAxis(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		a, err := NewUniformAxis(-90, 0.5, 361)
		require.NoError(t, err)
		assert.Equal(t, 361, a.Len())
		assert.True(t, a.IsRegular())
		assert.Equal(t, -90.0, a.Front())
		assert.InDelta(t, 90.0, a.Back(), 1e-12)

		values := make([]float64, a.Len())
		for i := range values {
			values[i] = a.Value(i)
		}
		testutil.AssertMonotonic(t, values)
	})

	t.Run("descending", func(t *testing.T) {
		a, err := NewUniformAxis(90, -45, 5)
		require.NoError(t, err)
		assert.False(t, a.IsAscending())
		assert.InDelta(t, -90.0, a.Back(), 1e-12)
	})

	t.Run("single point", func(t *testing.T) {
		a, err := NewUniformAxis(3, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 3.0, a.Front())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewUniformAxis(0, 1, 0)
		assert.ErrorIs(t, err, ErrConstruction)

		_, err = NewUniformAxis(0, 0, 5)
		assert.ErrorIs(t, err, ErrConstruction)
	})
}

func TestNewLonLatGrid(t *testing.T) {
	lons := []float64{0, 120, 240}
	lats := []float64{-30, 0, 30}
	g, err := NewLonLatGrid(lons, lats, make([]float64, 9))
	require.NoError(t, err)
	assert.True(t, g.X().IsCircular())
	assert.Equal(t, PeriodDegrees, g.X().Period())
	assert.False(t, g.Y().IsCircular())

	_, err = NewLonLatGrid([]float64{0, 500}, lats, make([]float64, 6))
	assert.ErrorIs(t, err, ErrConstruction)
}
