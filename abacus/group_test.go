package abacus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/pathscanner"
)

// TestBuildGroup_ScenarioA checks the CSR matrix against the same
// fixture as total_test.go's Scenario A: segment 2 is covered by both
// groups, segment 5 by none.
func TestBuildGroup_ScenarioA(t *testing.T) {
	res := &pathscanner.Result{
		Kind: pathscanner.Node,
		PathItems: []pathscanner.PathItems{
			{PathIndex: 0, Group: "a", Items: []pathscanner.ItemID{1, 2, 3}},
			{PathIndex: 1, Group: "b", Items: []pathscanner.ItemID{2, 3, 4}},
		},
	}

	g := abacus.BuildGroup(res, []int{0, 1}, []string{"a", "b"}, 5, false, nil)

	assertCSRInvariants(t, g)

	require.Equal(t, []int{0}, rowGroups(g, 1))
	require.Equal(t, []int{0, 1}, rowGroups(g, 2))
	require.Equal(t, []int{0, 1}, rowGroups(g, 3))
	require.Equal(t, []int{1}, rowGroups(g, 4))
	require.Equal(t, []int{}, rowGroups(g, 5))
}

// TestBuildGroup_MatchesTotalCoverage checks spec.md §8 invariant 3:
// AbacusTotal.countable[i] equals the number of distinct groups in
// AbacusGroup's row for i.
func TestBuildGroup_MatchesTotalCoverage(t *testing.T) {
	res := &pathscanner.Result{
		Kind: pathscanner.Node,
		PathItems: []pathscanner.PathItems{
			{PathIndex: 0, Group: "a", Items: []pathscanner.ItemID{1, 2, 3}},
			{PathIndex: 1, Group: "b", Items: []pathscanner.ItemID{2, 3, 4}},
		},
	}
	groupIndices, groups := []int{0, 1}, []string{"a", "b"}

	total := abacus.BuildTotal(res, groupIndices, groups, 5, nil)
	g := abacus.BuildGroup(res, groupIndices, groups, 5, false, nil)

	for id := 1; id <= 5; id++ {
		require.Equal(t, total.Countable[id], len(rowGroups(g, id)), "segment %d", id)
	}
}

// TestBuildGroup_RepeatsWithinGroupDoNotDoubleCount mirrors the
// equivalent AbacusTotal test: a row must have exactly one entry per
// distinct group, even if the path visits the segment repeatedly.
func TestBuildGroup_RepeatsWithinGroupDoNotDoubleCount(t *testing.T) {
	res := &pathscanner.Result{
		Kind: pathscanner.Node,
		PathItems: []pathscanner.PathItems{
			{PathIndex: 0, Group: "a", Items: []pathscanner.ItemID{1, 1, 1}},
		},
	}

	g := abacus.BuildGroup(res, []int{0}, []string{"a"}, 1, false, nil)
	require.Equal(t, []int{0}, rowGroups(g, 1))
}

func assertCSRInvariants(t *testing.T, g *abacus.Group) {
	t.Helper()
	for i := 0; i <= g.N; i++ {
		require.LessOrEqual(t, g.RowPtr[i], g.RowPtr[i+1], "row_ptr must be monotone at %d", i)
	}
	for id := 1; id <= g.N; id++ {
		row := rowGroups(g, id)
		require.LessOrEqual(t, len(row), len(g.Groups))
		for i := 1; i < len(row); i++ {
			require.Less(t, row[i-1], row[i], "group indices within a row must be strictly increasing")
		}
		for _, gi := range row {
			require.Less(t, gi, len(g.Groups))
		}
	}
}

func rowGroups(g *abacus.Group, id int) []int {
	start, end := g.RowPtr[id], g.RowPtr[id+1]
	out := make([]int, 0, end-start)
	out = append(out, g.ColGroup[start:end]...)

	return out
}
