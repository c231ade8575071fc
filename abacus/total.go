package abacus

import (
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/bedio"
	"github.com/vlaran/pangaea/internal/xlog"
	"github.com/vlaran/pangaea/pathscanner"
)

var log = xlog.Named("abacus")

// BuildTotal aggregates res (PathScanner's per-path item streams, one
// entry per mask.PathOrder position) into a Total, per spec.md §4.4.
// groupIndices and groups come from graphmask.Mask.GroupIndices() and
// must be aligned position-for-position with res.PathItems. n is the
// total countable space size (GraphStore.SegmentCount() or
// .EdgeCount()). nodeLen resolves a segment's length for bp uncovered
// accounting; it is unused for Node/Edge kinds.
func BuildTotal(res *pathscanner.Result, groupIndices []int, groups []string, n int, nodeLen func(graphstore.SegmentId) int) *Total {
	countable := make([]int, n+1)
	countable[0] = SentinelMax
	last := make([]int, n+1)
	for i := range last {
		last[i] = -1
	}

	for pos, pi := range res.PathItems {
		gi := groupIndices[pos]
		for _, item := range pi.Items {
			id := int(item)
			if id < 1 || id > n {
				log.Warn().Int("id", id).Int("n", n).Msg("countable id out of range, skipping")
				continue
			}
			if last[id] == gi {
				continue // repeats within the same group-run do not double-count
			}
			last[id] = gi
			countable[id]++
			if countable[id] > len(groups) {
				log.Warn().Int("id", id).Msg("coverage exceeds group count, clamping")
				countable[id] = len(groups)
			}
		}
	}

	t := &Total{Kind: res.Kind, Countable: countable, Groups: groups}
	if res.Kind == pathscanner.BP {
		t.UncoveredBps = uncoveredBps(res.Covered, nodeLen)
	}

	return t
}

// uncoveredBps computes, per touched segment, node_len - covered,
// where covered is the sum of the globally merged covered intervals
// (spec.md §4.4 "Uncovered-bps computation"). Segments never touched
// by any path never appear in res.Covered and are left for Histogram
// to route entirely through hist[0] via countable[id] == 0.
func uncoveredBps(covered map[graphstore.SegmentId][]bedio.Interval, nodeLen func(graphstore.SegmentId) int) map[graphstore.SegmentId]int {
	out := make(map[graphstore.SegmentId]int, len(covered))
	for id, ivs := range covered {
		total := 0
		for _, iv := range ivs {
			total += iv.End - iv.Start
		}
		uncovered := nodeLen(id) - total
		if uncovered < 0 {
			uncovered = 0
		}
		out[id] = uncovered
	}

	return out
}
