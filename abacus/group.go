package abacus

import (
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/pathscanner"
)

// BuildGroup builds AbacusGroup's CSR matrix via the two-pass algorithm
// of spec.md §4.5: a sizing pass produces row_ptr, then a fill pass
// writes col_group (and, if needVal, val) using a write cursor stashed
// in the last slot of each row instead of a separate cursor array
// (spec.md §4.5 "Note", §9 "CSR build without explicit free-list").
// nodeLen resolves a segment's length for bp-kind uncovered-bps
// accounting (spec.md §4.7 "Ordered growth"); it is unused otherwise.
func BuildGroup(res *pathscanner.Result, groupIndices []int, groups []string, n int, needVal bool, nodeLen func(graphstore.SegmentId) int) *Group {
	rowPtr := sizingPass(res, groupIndices, n)
	colGroup, val := fillPass(res, groupIndices, rowPtr, n, needVal)

	g := &Group{Kind: res.Kind, N: n, RowPtr: rowPtr, ColGroup: colGroup, Val: val, Groups: groups}
	if res.Kind == pathscanner.BP {
		g.UncoveredBps = uncoveredBps(res.Covered, nodeLen)
	}

	return g
}

func sizingPass(res *pathscanner.Result, groupIndices []int, n int) []int {
	counts := make([]int, n+2)
	last := make([]int, n+1)
	for i := range last {
		last[i] = -1
	}
	for pos, pi := range res.PathItems {
		gi := groupIndices[pos]
		for _, item := range pi.Items {
			id := int(item)
			if id < 1 || id > n || last[id] == gi {
				continue
			}
			last[id] = gi
			counts[id]++
		}
	}

	rowPtr := make([]int, n+2)
	for id := 0; id <= n; id++ {
		rowPtr[id+1] = rowPtr[id] + counts[id]
	}

	return rowPtr
}

const sentinelColGroup = -1

func fillPass(res *pathscanner.Result, groupIndices []int, rowPtr []int, n int, needVal bool) ([]int, []float64) {
	nnz := rowPtr[n+1]
	colGroup := make([]int, nnz)
	for i := range colGroup {
		colGroup[i] = sentinelColGroup
	}
	var val []float64
	if needVal {
		val = make([]float64, nnz)
	}

	last := make([]int, n+1)
	for i := range last {
		last[i] = -1
	}

	for pos, pi := range res.PathItems {
		gi := groupIndices[pos]
		for k, item := range pi.Items {
			id := int(item)
			if id < 1 || id > n || last[id] == gi {
				continue
			}

			start, end := rowPtr[id], rowPtr[id+1]
			rowLen := end - start
			var offset int
			if last[id] == -1 {
				offset = 0
				if rowLen > 1 {
					colGroup[end-1] = 0 // stash initial cursor
				}
			} else {
				cursor := colGroup[end-1]
				offset = cursor + 1
				if start+offset != end-1 {
					colGroup[end-1] = offset // advance cursor
				}
			}
			colGroup[start+offset] = gi
			if val != nil {
				v := 1.0
				if pi.Lengths != nil && k < len(pi.Lengths) {
					v = float64(pi.Lengths[k])
				}
				val[start+offset] = v
			}
			last[id] = gi
		}
	}

	return colGroup, val
}
