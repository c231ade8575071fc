package core_test

import (
	"testing"

	"github.com/vlaran/pangaea/core"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("1"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("1"); err != nil {
		t.Fatalf("AddVertex (repeat): %v", err)
	}
	if got := g.Vertices(); len(got) != 1 {
		t.Fatalf("Vertices() = %v, want 1 entry", got)
	}
}

func TestAddVertexEmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); err != core.ErrEmptyVertexID {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
}

func TestVerticesSortedLex(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"3", "10", "2", "1"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}

	got := g.Vertices()
	want := []string{"1", "10", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("Vertices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertices() = %v, want %v", got, want)
		}
	}
}

func TestAddEdgeMirrorsUndirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if _, err := g.AddEdge("1", "2", 5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasEdge("1", "2") || !g.HasEdge("2", "1") {
		t.Fatalf("expected mirrored undirected edge between 1 and 2")
	}

	neighbors, err := g.Neighbors("1")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].To != "2" {
		t.Fatalf("Neighbors(1) = %+v, want one edge to 2", neighbors)
	}
}

func TestAddEdgeRejectsParallel(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("1", "2", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("1", "2", 0); err != core.ErrMultiEdge {
		t.Fatalf("AddEdge (parallel) = %v, want ErrMultiEdge", err)
	}
}

func TestAddEdgeRejectsWeightWhenUnweighted(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("1", "2", 3); err != core.ErrBadWeight {
		t.Fatalf("AddEdge = %v, want ErrBadWeight", err)
	}
}

func TestNeighborsMissingVertex(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.Neighbors("missing"); err != core.ErrVertexNotFound {
		t.Fatalf("Neighbors(missing) = %v, want ErrVertexNotFound", err)
	}
}
