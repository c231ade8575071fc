package graphstore

import (
	"strconv"

	"github.com/vlaran/pangaea/core"
	"github.com/vlaran/pangaea/dfs"
	"github.com/vlaran/pangaea/internal/gfa"
)

// applyNiceOrder computes a DFS-based relabelling of segment IDs so
// that neighboring IDs are topologically close (spec.md §4.1, §2
// GraphStore "Optionally permutes identifiers to a 'nice' depth-first
// order"), and permutes segmentName/segmentLen/segmentIndex in place.
//
// The scratch structure is an adapted core.Graph: segment IDs become
// vertex IDs (as decimal strings, since core.Graph keys vertices by
// string), and L records become undirected edges; dfs.DFS with
// WithFullTraversal walks every connected component (segments with no
// links at all still receive an order via their own singleton visit).
func (gs *GraphStore) applyNiceOrder(links []gfa.Link) error {
	n := gs.SegmentCount()
	if n == 0 {
		return nil
	}

	scratch := core.NewGraph(core.WithWeighted())
	for id := 1; id <= n; id++ {
		if err := scratch.AddVertex(strconv.Itoa(id)); err != nil {
			return err
		}
	}
	for _, l := range links {
		u, ok := gs.segmentIndex[l.From]
		if !ok {
			return ErrUnknownSegment
		}
		v, ok := gs.segmentIndex[l.To]
		if !ok {
			return ErrUnknownSegment
		}
		if scratch.HasEdge(strconv.Itoa(int(u)), strconv.Itoa(int(v))) {
			continue
		}
		if _, err := scratch.AddEdge(strconv.Itoa(int(u)), strconv.Itoa(int(v)), 1); err != nil {
			return err
		}
	}

	res, err := dfs.DFS(scratch, strconv.Itoa(1), dfs.WithFullTraversal())
	if err != nil {
		return err
	}

	// res.Order is post-order visitation across the whole forest; use
	// visitation rank as the new, topologically-close SegmentId.
	newOfOld := make(map[SegmentId]SegmentId, n)
	for rank, idStr := range res.Order {
		old, _ := strconv.Atoi(idStr)
		newOfOld[SegmentId(old)] = SegmentId(rank + 1)
	}

	newName := make([]string, n+1)
	newLen := make([]int, n+1)
	for old := 1; old <= n; old++ {
		nu := newOfOld[SegmentId(old)]
		newName[nu] = gs.segmentName[old]
		newLen[nu] = gs.segmentLen[old]
	}
	gs.segmentName = newName
	gs.segmentLen = newLen
	for name, old := range gs.segmentIndex {
		gs.segmentIndex[name] = newOfOld[old]
	}

	return nil
}
