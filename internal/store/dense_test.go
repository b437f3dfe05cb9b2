package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesShape(t *testing.T) {
	t.Run("size mismatch", func(t *testing.T) {
		_, err := New(make([]float64, 7), 2, 3)
		assert.ErrorIs(t, err, ErrShape)
	})

	t.Run("too few axes", func(t *testing.T) {
		_, err := New(make([]float64, 6), 6)
		assert.ErrorIs(t, err, ErrShape)
	})

	t.Run("too many axes", func(t *testing.T) {
		_, err := New(make([]float64, 32), 2, 2, 2, 2, 2)
		assert.ErrorIs(t, err, ErrShape)
	})

	t.Run("zero length axis", func(t *testing.T) {
		_, err := New([]float64{}, 0, 3)
		assert.ErrorIs(t, err, ErrShape)
	})

	t.Run("valid", func(t *testing.T) {
		d, err := New(make([]float32, 24), 2, 3, 4)
		require.NoError(t, err)
		assert.Equal(t, 3, d.NDim())
		assert.Equal(t, []int{2, 3, 4}, d.Shape())
		assert.Equal(t, 24, d.Len())
	})
}

func TestRowMajorLayout(t *testing.T) {
	// Last axis varies fastest.
	data := []float64{
		0, 1, 2,
		10, 11, 12,
	}
	d, err := New(data, 2, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want := float64(10*i + j)
			assert.Equal(t, want, d.At2(i, j))

			v, err := d.Fetch(i, j)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
	}
}

func TestFetchErrors(t *testing.T) {
	d, err := New(make([]float64, 6), 2, 3)
	require.NoError(t, err)

	_, err = d.Fetch(0)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = d.Fetch(2, 0)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = d.Fetch(0, -1)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestAtClampsStrayIndices(t *testing.T) {
	data := []float64{0, 1, 2, 10, 11, 12}
	d, err := New(data, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.At2(-1, 0))
	assert.Equal(t, 12.0, d.At2(5, 9))
}

func TestAt3At4(t *testing.T) {
	data3 := make([]float64, 2*3*4)
	for i := range data3 {
		data3[i] = float64(i)
	}
	d3, err := New(data3, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(1*12+2*4+3), d3.At3(1, 2, 3))

	data4 := make([]float64, 2*2*2*2)
	for i := range data4 {
		data4[i] = float64(i)
	}
	d4, err := New(data4, 2, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(8+4+2+1), d4.At4(1, 1, 1, 1))
	assert.Equal(t, 0.0, d4.At4(0, 0, 0, 0))
}

func TestFlip(t *testing.T) {
	t.Run("first dim", func(t *testing.T) {
		d, err := New([]float64{0, 1, 2, 10, 11, 12}, 2, 3)
		require.NoError(t, err)
		d.Flip(0)
		assert.Equal(t, []float64{10, 11, 12, 0, 1, 2}, d.Values())
	})

	t.Run("last dim", func(t *testing.T) {
		d, err := New([]float64{0, 1, 2, 10, 11, 12}, 2, 3)
		require.NoError(t, err)
		d.Flip(1)
		assert.Equal(t, []float64{2, 1, 0, 12, 11, 10}, d.Values())
	})

	t.Run("middle dim", func(t *testing.T) {
		data := make([]float64, 2*3*2)
		for i := range data {
			data[i] = float64(i)
		}
		d, err := New(data, 2, 3, 2)
		require.NoError(t, err)
		d.Flip(1)
		assert.Equal(t, []float64{
			4, 5, 2, 3, 0, 1,
			10, 11, 8, 9, 6, 7,
		}, d.Values())
	})

	t.Run("double flip restores", func(t *testing.T) {
		data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
		d, err := New(append([]float64(nil), data...), 2, 4)
		require.NoError(t, err)
		d.Flip(0)
		d.Flip(0)
		assert.Equal(t, data, d.Values())
	})
}
