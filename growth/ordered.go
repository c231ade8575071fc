package growth

import (
	"math"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/pathscanner"
)

// Ordered computes the ordered growth curve from an AbacusGroup whose
// columns (groups) are already in the caller's desired presentation
// order, per spec.md §4.7 "Ordered growth (from AbacusGroup)". nodeLen
// resolves a segment's length for bp-kind counting; it is unused
// otherwise.
func Ordered(g *abacus.Group, tCoverage, tQuorum Threshold, nodeLen func(graphstore.SegmentId) int) []float64 {
	n := len(g.Groups)
	res := make([]float64, n)
	if n == 0 {
		return res
	}

	c := tCoverage.ToAbsolute(n)
	if c < 1 {
		c = 1
	}
	q := tQuorum.ToRelative(n)
	if q < 0 {
		q = 0
	}

	for id := 1; id <= g.N; id++ {
		start, end := g.RowPtr[id], g.RowPtr[id+1]
		if end-start < c {
			continue
		}

		k := start
		for j := g.ColGroup[start]; j < n; j++ {
			if k < end-1 && g.ColGroup[k+1] <= j {
				k++
			}
			if k-start+1 >= int(math.Ceil(float64(g.ColGroup[k]+1)*q)) {
				switch g.Kind {
				case pathscanner.Node, pathscanner.Edge:
					res[j]++
				case pathscanner.BP:
					sid := graphstore.SegmentId(id)
					covered := nodeLen(sid)
					uncovered := g.UncoveredBps[sid]
					if uncovered > covered {
						log.Error().Int("id", id).Int("uncovered", uncovered).Int("covered", covered).Msg("uncovered bps exceeds covered bps")
						continue
					}
					res[j] += float64(covered - uncovered)
				}
			}
		}
	}

	return res
}
