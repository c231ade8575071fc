package bfs_test

import (
	"testing"

	"github.com/vlaran/pangaea/bfs"
	"github.com/vlaran/pangaea/core"
)

func TestBFSNilGraph(t *testing.T) {
	if _, err := bfs.BFS(nil, "1"); err != bfs.ErrGraphNil {
		t.Fatalf("BFS(nil, ...) = %v, want ErrGraphNil", err)
	}
}

func TestBFSMissingStart(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("1"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := bfs.BFS(g, "missing"); err != bfs.ErrStartVertexNotFound {
		t.Fatalf("BFS(missing) = %v, want ErrStartVertexNotFound", err)
	}
}

func TestBFSVisitsConnectedChain(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("1", "2", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("2", "3", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	res, err := bfs.BFS(g, "1")
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if len(res.Order) != 3 || !res.Visited["1"] || !res.Visited["2"] || !res.Visited["3"] {
		t.Fatalf("BFS(1) = %+v, want all three vertices visited", res)
	}
}

func TestConnectedComponentsCountsDisjointPieces(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("1", "2", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddVertex("3"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := g.AddEdge("4", "5", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	n, err := bfs.ConnectedComponents(g)
	if err != nil {
		t.Fatalf("ConnectedComponents: %v", err)
	}
	if n != 3 {
		t.Fatalf("ConnectedComponents = %d, want 3", n)
	}
}

func TestConnectedComponentsNilGraph(t *testing.T) {
	if _, err := bfs.ConnectedComponents(nil); err != bfs.ErrGraphNil {
		t.Fatalf("ConnectedComponents(nil) = %v, want ErrGraphNil", err)
	}
}
