package histogram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/pathscanner"
)

// TestFromTotal_ScenarioA reproduces spec.md §8 Scenario A: 5 segments
// of length 1, paths a:1+,2+,3+ and b:2+,3+,4+ in distinct groups.
func TestFromTotal_ScenarioA(t *testing.T) {
	total := &abacus.Total{
		Kind:      pathscanner.Node,
		Countable: []int{abacus.SentinelMax, 1, 2, 2, 1, 0},
		Groups:    []string{"a", "b"},
	}

	h := histogram.FromTotal(total, nil)
	require.Equal(t, []int{1, 2, 2}, h.Coverage)
	require.Equal(t, 5, h.Total())
	require.Equal(t, 2, h.N())
}

func TestFromTotal_BPUncovered(t *testing.T) {
	lens := map[graphstore.SegmentId]int{1: 10, 2: 10}
	total := &abacus.Total{
		Kind:         pathscanner.BP,
		Countable:    []int{abacus.SentinelMax, 1, 2},
		Groups:       []string{"a", "b"},
		UncoveredBps: map[graphstore.SegmentId]int{1: 4, 2: 0},
	}

	h := histogram.FromTotal(total, func(id graphstore.SegmentId) int { return lens[id] })
	// segment 1: full length 10 credited to hist[1], then 4 uncovered
	// bps move from hist[1] to hist[0].
	// segment 2: full length 10 credited to hist[2], no uncovered bps.
	require.Equal(t, []int{4, 6, 10}, h.Coverage)
	require.Equal(t, 20, h.Total())
}

func TestFromTotal_CoverageExceedsN(t *testing.T) {
	total := &abacus.Total{
		Kind:      pathscanner.Node,
		Countable: []int{abacus.SentinelMax, 5},
		Groups:    []string{"a"},
	}

	h := histogram.FromTotal(total, nil)
	// id 1's coverage (5) exceeds n (1): skipped entirely, not counted
	// anywhere (spec.md §4.6 "warn and skip").
	require.Equal(t, []int{0, 0}, h.Coverage)
}
