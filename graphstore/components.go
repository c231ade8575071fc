package graphstore

import (
	"strconv"

	"github.com/vlaran/pangaea/bfs"
	"github.com/vlaran/pangaea/core"
)

// ConnectedComponents returns the number of weakly connected components
// among this store's segments, treating every resolved link as an
// undirected edge regardless of orientation. Requires Load to have been
// called with needEdges=true.
func (gs *GraphStore) ConnectedComponents() (int, error) {
	n := gs.SegmentCount()
	if n == 0 {
		return 0, nil
	}

	scratch := core.NewGraph()
	for id := 1; id <= n; id++ {
		if err := scratch.AddVertex(strconv.Itoa(id)); err != nil {
			return 0, err
		}
	}
	for i := 1; i <= gs.EdgeCount(); i++ {
		key := gs.EdgeKeyByID(EdgeId(i))
		u, v := strconv.Itoa(int(key.U)), strconv.Itoa(int(key.V))
		if scratch.HasEdge(u, v) {
			continue
		}
		if _, err := scratch.AddEdge(u, v, 0); err != nil {
			return 0, err
		}
	}

	return bfs.ConnectedComponents(scratch)
}
