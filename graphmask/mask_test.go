package graphmask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/graphmask"
	"github.com/vlaran/pangaea/internal/bedio"
)

func TestBuild_DefaultGrouping_NEqualsPathCount(t *testing.T) {
	paths := []string{"s1#0", "s2#0", "s3#0"}

	m, err := graphmask.Build(paths, graphmask.BuildOptions{Mode: graphmask.Default})
	require.NoError(t, err)
	require.Equal(t, len(paths), m.GroupCount())
}

func TestBuild_BySample_GroupsContiguous(t *testing.T) {
	paths := []string{"s1#0", "s2#0", "s1#1"}

	m, err := graphmask.Build(paths, graphmask.BuildOptions{Mode: graphmask.BySample})
	require.NoError(t, err)

	// s1's two paths (indices 0 and 2) must land in one contiguous run,
	// even though they weren't adjacent in file order.
	var s1Positions []int
	for i, e := range m.PathOrder {
		if e.Group == "s1" {
			s1Positions = append(s1Positions, i)
		}
	}
	require.Len(t, s1Positions, 2)
	require.Equal(t, s1Positions[0]+1, s1Positions[1])
}

func TestBuild_ByHaplotype(t *testing.T) {
	paths := []string{"s1#0#chr1", "s1#1#chr1"}

	m, err := graphmask.Build(paths, graphmask.BuildOptions{Mode: graphmask.ByHaplotype})
	require.NoError(t, err)
	require.Equal(t, 2, m.GroupCount())
}

func TestBuild_OrderFileInterleaves_Rejected(t *testing.T) {
	paths := []string{"a1#0", "b1#0", "a1#1"}

	_, err := graphmask.Build(paths, graphmask.BuildOptions{
		Mode:       graphmask.BySample,
		OrderPaths: []string{"a1#0", "b1#0", "a1#1"}, // a then b then a again: interleaved
	})
	require.ErrorIs(t, err, graphmask.ErrMaskConflict)
}

func TestBuild_GroupNameWithCoords_Rejected(t *testing.T) {
	paths := []string{"s1#0", "s1#1"}

	_, err := graphmask.Build(paths, graphmask.BuildOptions{
		Mode: graphmask.BySample,
		Include: []bedio.Entry{
			{Name: "s1", Intervals: []bedio.Interval{{Start: 0, End: 10}}},
		},
	})
	require.ErrorIs(t, err, graphmask.ErrMaskConflict)
}

func TestBuild_IncludeWholePath(t *testing.T) {
	paths := []string{"s1#0", "s2#0"}

	m, err := graphmask.Build(paths, graphmask.BuildOptions{
		Mode:    graphmask.Default,
		Include: []bedio.Entry{{Name: "s1#0"}},
	})
	require.NoError(t, err)
	require.Len(t, m.PathOrder, 1)
	require.Equal(t, 0, m.PathOrder[0].PathIndex)
	require.True(t, m.IncludeMap[0].Whole)
}

func TestGroupIndices_MonotoneNonDecreasing(t *testing.T) {
	paths := []string{"a1#0", "a1#1", "b1#0"}

	m, err := graphmask.Build(paths, graphmask.BuildOptions{Mode: graphmask.BySample})
	require.NoError(t, err)

	indices, labels := m.GroupIndices()
	require.Equal(t, []string{"a1", "b1"}, labels)
	for i := 1; i < len(indices); i++ {
		require.GreaterOrEqual(t, indices[i], indices[i-1])
	}
}
