// Package dfs implements depth-first search (single-source and forest) on
// core.Graph.
//
// Complexity: O(V + E).
package dfs

import "github.com/vlaran/pangaea/core"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	res   *DFSResult
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components, restarting from
// each unvisited vertex in g.Vertices() order; otherwise it starts only from
// startID. Result.Order records vertices in post-order: a vertex is appended
// only after all of its neighbors have been recursed into.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var o Options
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}
	walker := &dfsWalker{graph: g, res: res}

	if o.FullTraversal {
		for _, v := range vertices {
			if !res.Visited[v] {
				walker.traverse(v)
			}
		}
	} else {
		walker.traverse(startID)
	}

	return res, nil
}

// traverse visits vertex id, recursing into unvisited neighbors before
// appending id to the result (post-order).
func (w *dfsWalker) traverse(id string) {
	w.res.Visited[id] = true

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return
	}

	var e *core.Edge
	var nid string
	for _, e = range nbs {
		// Neighbors(id) returns edges mirrored both ways; resolve the
		// endpoint opposite id rather than assuming e.To, since a
		// mirrored lookup may see id sitting in the To field.
		if e.From == id {
			nid = e.To
		} else {
			nid = e.From
		}
		if nid == id {
			continue
		}
		if !w.res.Visited[nid] {
			w.traverse(nid)
		}
	}

	w.res.Order = append(w.res.Order, id)
}
