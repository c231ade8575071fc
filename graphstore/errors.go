// Package graphstore implements the GraphStore component (spec.md §4.1):
// a single pass over GFA S/L/P/W records that assigns dense segment and
// canonical-edge identifiers, plus an optional DFS-based "nice order"
// re-labelling pass.
package graphstore

import "errors"

// ERROR PRIORITY: MalformedGFA/DuplicateSegment are raised while
// scanning and are always fatal; UnknownSegment is raised during the
// edge-resolution pass over previously-buffered L records (and by
// pathscanner for path steps), UnknownEdge by EdgeID during pathscanner's
// edge counting.
var (
	// ErrDuplicateSegment is returned when an S record repeats a name
	// already assigned a SegmentId in this GraphStore.
	ErrDuplicateSegment = errors.New("graphstore: duplicate segment name")

	// ErrUnknownSegment is returned when an L, P, or W record references
	// a segment name with no assigned SegmentId.
	ErrUnknownSegment = errors.New("graphstore: unknown segment")

	// ErrUnknownEdge is returned when pathscanner's edge counting
	// references an adjacency with no canonical EdgeId. The diagnostic
	// states whether the flipped form is known (spec.md §7).
	ErrUnknownEdge = errors.New("graphstore: unknown edge")

	// ErrMalformedPathID is returned when a path/walk identifier does
	// not match the sample[#haplotype[#seqid[:start-end]]] grammar.
	ErrMalformedPathID = errors.New("graphstore: malformed path identifier")
)
