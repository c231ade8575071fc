package graphstore

import "github.com/vlaran/pangaea/internal/gfa"

// SegmentId is a dense integer identifier for a segment, in [1..N].
// 0 is reserved as a sentinel (spec.md §3), so index 0 of any
// per-segment slice is never a real item.
type SegmentId uint32

// SentinelSegment is the reserved zero value of SegmentId.
const SentinelSegment SegmentId = 0

// EdgeId is a dense integer identifier for a canonical edge.
type EdgeId uint32

// SentinelEdge is the reserved zero value of EdgeId.
const SentinelEdge EdgeId = 0

// Orientation is re-exported from internal/gfa: both the GFA scanner
// and the graph store reason about the same Forward/Backward strand
// concept, and there is no benefit in a second, identical type.
type Orientation = gfa.Orientation

const (
	Forward  = gfa.Forward
	Backward = gfa.Backward
)

// EdgeKey is the canonical form of an undirected adjacency
// (u, ou, v, ov), per spec.md §4.1 "Canonical edge form". Two
// occurrences that are orientation-flips of each other produce the
// same EdgeKey.
type EdgeKey struct {
	U  SegmentId
	OU Orientation
	V  SegmentId
	OV Orientation
}

// Canonical normalizes (u, ou, v, ov) to the canonical form: unchanged
// if u == v; unchanged if u < v; otherwise swapped with both
// orientations flipped. flip(flip(x)) == x follows directly since
// swapping twice and flipping twice both return the original tuple.
func Canonical(u SegmentId, ou Orientation, v SegmentId, ov Orientation) EdgeKey {
	if u == v || u < v {
		return EdgeKey{U: u, OU: ou, V: v, OV: ov}
	}

	return EdgeKey{U: v, OU: ov.Flip(), V: u, OV: ou.Flip()}
}

// Flip returns the canonical form of the reverse traversal of k.
func (k EdgeKey) Flip() EdgeKey {
	return Canonical(k.V, k.OV.Flip(), k.U, k.OU.Flip())
}
