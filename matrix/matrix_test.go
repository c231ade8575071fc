package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAtRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestDense_OutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_Clone_IsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestDense_Row(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 1, 2))
	require.NoError(t, m.Set(1, 2, 3))

	require.Equal(t, []float64{1, 2, 3}, m.Row(1))
}

func TestDense_Permute(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Set(i, i, float64(i+1)))
	}

	permuted, err := m.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	v, err := permuted.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // original (2,2) moves to (0,0)

	_, err = m.Permute([]int{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
