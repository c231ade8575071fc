package growth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/growth"
	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/pathscanner"
)

func assertAlmostEqual(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], 1e-9, "index %d: want %v got %v", i, want[i], got[i])
	}
}

func TestChoose(t *testing.T) {
	require.InDelta(t, 0.0, growth.Choose(5, 0), 1e-12)
	require.InDelta(t, 0.0, growth.Choose(5, 5), 1e-12)
	require.InDelta(t, math.Log2(5), growth.Choose(5, 1), 1e-12)
	require.InDelta(t, math.Log2(5), growth.Choose(5, 4), 1e-12)
	require.InDelta(t, math.Log2(10), growth.Choose(5, 2), 1e-9) // C(5,2)=10
	require.Equal(t, 0.0, growth.Choose(5, 6))
}

// TestCalcGrowth_ScenarioB reproduces spec.md §8 Scenario B: hist =
// [0,5,3,2] (n=3), coverage=0, quorum=0 -> union growth.
func TestCalcGrowth_ScenarioB(t *testing.T) {
	h := &histogram.Hist{Kind: pathscanner.Node, Coverage: []int{0, 5, 3, 2}}
	g := growth.CalcGrowth(h, growth.AbsoluteThreshold(0), growth.RelativeThreshold(0))
	assertAlmostEqual(t, []float64{5.666666666666667, 8.333333333333334, 10.0}, g)
}

// TestCalcGrowth_ScenarioC reproduces spec.md §8 Scenario C: same hist,
// quorum=1 -> core growth.
func TestCalcGrowth_ScenarioC(t *testing.T) {
	h := &histogram.Hist{Kind: pathscanner.Node, Coverage: []int{0, 5, 3, 2}}
	g := growth.CalcGrowth(h, growth.AbsoluteThreshold(0), growth.RelativeThreshold(1))
	assertAlmostEqual(t, []float64{5.666666666666666, 3.0, 2.0}, g)
}

// TestCalcGrowth_ScenarioD reproduces spec.md §8 Scenario D: hist =
// [0,5,3,2,3,5,0,4,2,1] (n=9), quorum 0.9.
func TestCalcGrowth_ScenarioD(t *testing.T) {
	h := &histogram.Hist{Kind: pathscanner.Node, Coverage: []int{0, 5, 3, 2, 3, 5, 0, 4, 2, 1}}
	g := growth.CalcGrowth(h, growth.AbsoluteThreshold(0), growth.RelativeThreshold(0.9))
	assertAlmostEqual(t, []float64{
		11.88888888888889,
		7.027777777777777,
		4.761904761904761,
		3.4444444444444438,
		2.5952380952380953,
		2.0,
		1.5555555555555545,
		1.2222222222222217,
		1.0,
	}, g)
}

// TestCalcGrowth_Monotone checks spec.md §8 invariant 4: growth is
// non-decreasing for union and non-increasing for core.
func TestCalcGrowth_Monotone(t *testing.T) {
	h := &histogram.Hist{Kind: pathscanner.Node, Coverage: []int{0, 5, 3, 2, 3, 5, 0, 4, 2, 1}}

	union := growth.CalcGrowth(h, growth.AbsoluteThreshold(0), growth.RelativeThreshold(0))
	for i := 1; i < len(union); i++ {
		require.GreaterOrEqual(t, union[i], union[i-1]-1e-9)
	}

	core := growth.CalcGrowth(h, growth.AbsoluteThreshold(0), growth.RelativeThreshold(1))
	for i := 1; i < len(core); i++ {
		require.LessOrEqual(t, core[i], core[i-1]+1e-9)
	}
}

// TestCalcGrowth_UnionBoundary checks spec.md §8 invariant 5: growth[n]
// (union) equals sum_{i>=c} hist[i].
func TestCalcGrowth_UnionBoundary(t *testing.T) {
	h := &histogram.Hist{Kind: pathscanner.Node, Coverage: []int{0, 5, 3, 2}}
	g := growth.CalcGrowth(h, growth.AbsoluteThreshold(0), growth.RelativeThreshold(0))
	require.InDelta(t, 10.0, g[len(g)-1], 1e-9) // 5+3+2
}

func TestOrdered_NodeKind(t *testing.T) {
	// 2 segments, 3 groups; segment 1 covered by groups 0,1,2; segment 2
	// covered by group 1 only.
	g := &abacus.Group{
		Kind:     pathscanner.Node,
		N:        2,
		RowPtr:   []int{0, 0, 3, 4},
		ColGroup: []int{0, 1, 2, 1},
		Groups:   []string{"g0", "g1", "g2"},
	}

	res := growth.Ordered(g, growth.AbsoluteThreshold(0), growth.RelativeThreshold(0), nil)
	require.Len(t, res, 3)
	// At growth point j=2 (subset {g0,g1,g2}), both segments are seen.
	require.InDelta(t, 2.0, res[2], 1e-9)
}

func TestOrdered_BPKind(t *testing.T) {
	g := &abacus.Group{
		Kind:         pathscanner.BP,
		N:            1,
		RowPtr:       []int{0, 0, 2},
		ColGroup:     []int{0, 1},
		Groups:       []string{"g0", "g1"},
		UncoveredBps: map[graphstore.SegmentId]int{1: 2},
	}
	nodeLen := func(id graphstore.SegmentId) int { return 10 }

	res := growth.Ordered(g, growth.AbsoluteThreshold(0), growth.RelativeThreshold(0), nodeLen)
	require.Len(t, res, 2)
	require.InDelta(t, 8.0, res[0], 1e-9) // 10 - 2 uncovered, counted at the first growth point it satisfies quorum
}
