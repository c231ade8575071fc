// Package similarity computes pairwise Jaccard similarity between
// groups (spec.md §6 "Similarity", original_source/src/analyses/similarity.rs
// Similarity::set_table) and orders the resulting matrix by
// average-linkage hierarchical clustering so that similar groups sit
// next to each other in the rendered heatmap.
package similarity

import (
	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/xlog"
	"github.com/vlaran/pangaea/matrix"
	"github.com/vlaran/pangaea/pathscanner"
)

var log = xlog.Named("similarity")

// Matrix pairs a square similarity matrix with the group labels for its
// rows/columns, in the same order.
type Matrix struct {
	Groups []string
	Values *matrix.Dense
}

// groupSets returns, for each group index, the set of item IDs the
// group covers. It carries no lengths; bp weighting of intersections
// and unions (the Rust original's CountType::Bp branch in
// Similarity::set_table) is applied by the caller through its weight
// function.
func groupSets(g *abacus.Group) []map[int]struct{} {
	sets := make([]map[int]struct{}, len(g.Groups))
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for id := 1; id <= g.N; id++ {
		start, end := g.RowPtr[id], g.RowPtr[id+1]
		for _, gi := range g.ColGroup[start:end] {
			if gi < 0 {
				continue
			}
			sets[gi][id] = struct{}{}
		}
	}

	return sets
}

// Jaccard builds the pairwise similarity matrix for g's groups. For
// node/edge kinds it is the plain Jaccard index |A∩B|/|A∪B|; for bp
// kind, intersection and union are summed in base pairs via nodeLen
// rather than counted by item.
func Jaccard(g *abacus.Group, nodeLen func(graphstore.SegmentId) int) (*Matrix, error) {
	n := len(g.Groups)
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	sets := groupSets(g)
	weight := func(id int) float64 { return 1 }
	if g.Kind == pathscanner.BP {
		weight = func(id int) float64 { return float64(nodeLen(graphstore.SegmentId(id))) }
	}

	for i := 0; i < n; i++ {
		if err := dense.Set(i, i, 1.0); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			score := pairScore(sets[i], sets[j], weight)
			if err := dense.Set(i, j, score); err != nil {
				return nil, err
			}
			if err := dense.Set(j, i, score); err != nil {
				return nil, err
			}
		}
	}
	log.Debug().Int("groups", n).Msg("built similarity matrix")

	return &Matrix{Groups: g.Groups, Values: dense}, nil
}

func pairScore(a, b map[int]struct{}, weight func(int) float64) float64 {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	var inter, union float64
	for id := range small {
		w := weight(id)
		union += w
		if _, ok := large[id]; ok {
			inter += w
		}
	}
	for id := range large {
		if _, ok := small[id]; !ok {
			union += weight(id)
		}
	}
	if union == 0 {
		return 0
	}

	return inter / union
}
