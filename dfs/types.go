// Package dfs implements a depth-first forest walk over core.Graph, trimmed
// to the single traversal mode graphstore's nice-order relabeling exercises:
// full-graph, post-order, deterministic component-start order.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// FullTraversal, if true, runs DFS from every unvisited vertex in the
	// graph, covering disconnected components (forest traversal).
	FullTraversal bool
}

// WithFullTraversal enables full-graph traversal: DFS restarts from each
// unvisited vertex, in Vertices() order, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool
}
