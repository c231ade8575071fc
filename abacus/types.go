package abacus

import (
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/pathscanner"
)

// SentinelMax marks index 0 of Total.Countable: "countable[0] =
// SENTINEL_MAX so index 0 is ignored by histogramming" (spec.md §3).
const SentinelMax = int(^uint(0) >> 1)

// Total is AbacusTotal's output: a dense count[id] = number of groups
// containing id (spec.md §3 AbacusTotal).
type Total struct {
	Kind         pathscanner.CountKind
	Countable    []int // 1-based; index 0 == SentinelMax
	Groups       []string
	UncoveredBps map[graphstore.SegmentId]int // bp kind only
}

// Group is AbacusGroup's output: a CSR matrix recording which groups
// cover which countable (spec.md §3 AbacusGroup, §4.5).
type Group struct {
	Kind         pathscanner.CountKind
	N            int
	RowPtr       []int     // length N+2
	ColGroup     []int     // length RowPtr[N+1], strictly increasing within a row
	Val          []float64 // optional per-(item,group) value; nil unless requested
	Groups       []string
	UncoveredBps map[graphstore.SegmentId]int // bp kind only, used by growth's ordered-growth
}
