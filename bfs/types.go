// Package bfs provides breadth-first search over a core.Graph, trimmed to
// the single consumer graphstore needs: counting weakly connected
// components among segments for the info subcommand.
package bfs

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to BFS.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound indicates the start vertex does not exist.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Result captures the outcome of a breadth-first traversal from one root.
type Result struct {
	// Order records vertices in the order they were first visited
	// (BFS discovery order, root first).
	Order []string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool
}
