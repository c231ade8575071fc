// Package pathscanner implements PathScanner (spec.md §4.3): the
// second GFA pass that, for each P/W record, yields the ordered
// countable IDs a path contributes under the current graphmask.Mask.
package pathscanner

import (
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/bedio"
)

// CountKind selects what is being counted: segments, canonical edges,
// or base pairs (spec.md GLOSSARY "Countable").
type CountKind int

const (
	Node CountKind = iota
	Edge
	BP
)

func (k CountKind) String() string {
	switch k {
	case Node:
		return "node"
	case Edge:
		return "edge"
	case BP:
		return "bp"
	default:
		return "unknown"
	}
}

// ItemID is a dense identifier shared by SegmentId and EdgeId; which
// domain it belongs to is determined by the enclosing Result.Kind.
type ItemID uint32

// PathItems is one path's contribution: the ordered item list it
// pushes into AbacusTotal/AbacusGroup, alongside its resolved group
// label and its position in the mask's path order.
type PathItems struct {
	PathIndex int
	Group     string
	Items     []ItemID
	// Lengths holds, for BP-kind scans only, the covered sub-length
	// this path contributed to the matching entry in Items (used by
	// abacus's CSR "val" column and the by-group coverage table's bp
	// scaling, spec.md §6). Nil for Node/Edge kinds.
	Lengths []int
}

// Result is PathScanner's output: one PathItems per path in
// mask.PathOrder, plus (bp kind only) the globally merged covered
// intervals per segment, used by AbacusTotal to compute uncovered_bps.
type Result struct {
	Kind      CountKind
	PathItems []PathItems
	Covered   map[graphstore.SegmentId][]bedio.Interval
}
