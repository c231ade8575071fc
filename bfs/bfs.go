package bfs

import "github.com/vlaran/pangaea/core"

// BFS runs breadth-first search on g starting from startID, visiting
// vertices in increasing distance from the root.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &Result{
		Order:   make([]string, 0, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}

	queue := []string{startID}
	res.Visited[startID] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, e := range nbs {
			var nid string
			if e.From == id {
				nid = e.To
			} else {
				nid = e.From
			}
			if nid == id || res.Visited[nid] {
				continue
			}
			res.Visited[nid] = true
			queue = append(queue, nid)
		}
	}

	return res, nil
}

// ConnectedComponents counts the weakly connected components of g by
// repeatedly running BFS from the next unvisited vertex in g.Vertices()
// order until every vertex has been reached.
//
// Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	visited := make(map[string]bool)
	components := 0
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return 0, err
		}
		for id := range res.Visited {
			visited[id] = true
		}
		components++
	}

	return components, nil
}
