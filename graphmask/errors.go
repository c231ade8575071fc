// Package graphmask implements GraphMask (spec.md §4.2): turning
// grouping/include/exclude/order options into a deterministic path
// traversal plan.
package graphmask

import "errors"

var (
	// ErrMaskConflict covers a path mapped to two groups, an order file
	// interleaving groups, or a group-name coord with an explicit range
	// (spec.md §7 MaskConflict).
	ErrMaskConflict = errors.New("graphmask: mask conflict")

	// ErrUnknownPath names an order/include/exclude entry that matches
	// no path identifier in the graph's path list. Build does not return
	// it: such entries are logged as warnings and skipped.
	ErrUnknownPath = errors.New("graphmask: unknown path or group")
)
