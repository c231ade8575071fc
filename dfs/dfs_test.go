package dfs_test

import (
	"reflect"
	"testing"

	"github.com/vlaran/pangaea/core"
	"github.com/vlaran/pangaea/dfs"
)

func buildGraph(t *testing.T, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}

	return g
}

func TestDFSNilGraph(t *testing.T) {
	if _, err := dfs.DFS(nil, "1"); err != dfs.ErrGraphNil {
		t.Fatalf("DFS(nil, ...) = %v, want ErrGraphNil", err)
	}
}

func TestDFSMissingStart(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("1"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := dfs.DFS(g, "missing"); err != dfs.ErrStartVertexNotFound {
		t.Fatalf("DFS(missing) = %v, want ErrStartVertexNotFound", err)
	}
}

func TestDFSPostOrderSingleChain(t *testing.T) {
	g := buildGraph(t, [][2]string{{"1", "2"}, {"2", "3"}})

	res, err := dfs.DFS(g, "1")
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}

	want := []string{"3", "2", "1"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("Order = %v, want %v", res.Order, want)
	}
}

func TestDFSFullTraversalCoversDisconnectedComponents(t *testing.T) {
	g := buildGraph(t, [][2]string{{"1", "2"}})
	if err := g.AddVertex("9"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	if err != nil {
		t.Fatalf("DFS: %v", err)
	}
	if len(res.Order) != 3 {
		t.Fatalf("Order = %v, want 3 vertices", res.Order)
	}
	if !res.Visited["1"] || !res.Visited["2"] || !res.Visited["9"] {
		t.Fatalf("Visited = %v, want all three vertices visited", res.Visited)
	}
}
