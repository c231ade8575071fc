package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/matrix"
	"github.com/vlaran/pangaea/similarity"
)

func TestOrder_TwoTightPairs(t *testing.T) {
	// Four points: {0,1} close together, {2,3} close together, the two
	// pairs far apart. Average-linkage must keep each pair adjacent.
	d := [][]float64{
		{0, 1, 10, 10},
		{1, 0, 10, 10},
		{10, 10, 0, 1},
		{10, 10, 1, 0},
	}

	order := similarity.Order(d)
	require.Len(t, order, 4)

	pos := make(map[int]int, 4)
	for i, v := range order {
		pos[v] = i
	}
	require.Equal(t, 1, abs(pos[0]-pos[1]))
	require.Equal(t, 1, abs(pos[2]-pos[3]))
}

func TestOrder_SingleAndEmpty(t *testing.T) {
	require.Equal(t, []int{0}, similarity.Order([][]float64{{0}}))
	require.Equal(t, []int{}, similarity.Order(nil))
}

func TestEuclideanDistances_Symmetric(t *testing.T) {
	dense, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, dense.Set(0, 0, 1))
	require.NoError(t, dense.Set(0, 1, 0))
	require.NoError(t, dense.Set(1, 0, 0))
	require.NoError(t, dense.Set(1, 1, 1))

	m := &similarity.Matrix{Groups: []string{"a", "b"}, Values: dense}
	d := similarity.EuclideanDistances(m)
	require.Equal(t, d[0][1], d[1][0])
	require.InDelta(t, 1.4142135, d[0][1], 1e-5)
}

func TestReorder_PermutesLabelsAndValues(t *testing.T) {
	dense, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, dense.Set(0, 0, 1))
	require.NoError(t, dense.Set(1, 1, 2))

	m := &similarity.Matrix{Groups: []string{"a", "b"}, Values: dense}
	out, err := similarity.Reorder(m, []int{1, 0})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, out.Groups)

	v, err := out.Values.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
