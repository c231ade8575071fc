// Package histogram builds coverage histograms from an abacus.Total
// (spec.md §4.6): hist[k] is the number of countables (or, for bp
// counting, the summed base-pair length) covered by exactly k groups.
package histogram

import (
	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/xlog"
	"github.com/vlaran/pangaea/pathscanner"
)

var log = xlog.Named("histogram")

// Hist is the output contract: Coverage has length n+1, indexed by
// group-coverage count k (spec.md §3 "Hist").
type Hist struct {
	Kind     pathscanner.CountKind
	Coverage []int
}

// FromTotal computes Hist per spec.md §4.6. nodeLen resolves a
// segment's length for bp-kind histograms; it is never called for
// Node/Edge kinds.
func FromTotal(t *abacus.Total, nodeLen func(graphstore.SegmentId) int) *Hist {
	n := len(t.Groups)
	hist := make([]int, n+1)

	for id := 1; id < len(t.Countable); id++ {
		cov := t.Countable[id]
		if cov > n {
			log.Warn().Int("id", id).Int("coverage", cov).Int("n", n).Msg("coverage exceeds group count, skipping")
			continue
		}
		unit := 1
		if t.Kind == pathscanner.BP {
			unit = nodeLen(graphstore.SegmentId(id))
		}
		hist[cov] += unit
	}

	if t.Kind == pathscanner.BP {
		for id, uncov := range t.UncoveredBps {
			if uncov == 0 {
				continue
			}
			cov := t.Countable[int(id)]
			if cov <= n {
				hist[cov] -= uncov
			}
			hist[0] += uncov
		}
	}

	return &Hist{Kind: t.Kind, Coverage: hist}
}

// Total returns the sum of Coverage, i.e. the total number of
// countables (or total bp) represented by h (spec.md §8 invariant 1).
func (h *Hist) Total() int {
	sum := 0
	for _, c := range h.Coverage {
		sum += c
	}

	return sum
}

// N returns n, the number of groups (len(Coverage) - 1).
func (h *Hist) N() int {
	return len(h.Coverage) - 1
}
