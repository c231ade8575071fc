package graphmask

import "github.com/vlaran/pangaea/internal/bedio"

// GroupingMode selects how path identifiers are mapped to group labels
// (spec.md §4.2 "Grouping mode").
type GroupingMode int

const (
	// Default groups each path under its own full identifier (including
	// coordinates), so n == number_of_paths (spec.md §8 invariant 8).
	Default GroupingMode = iota
	// BySample groups all paths sharing a PathSegment.Sample.
	BySample
	// ByHaplotype groups all paths sharing Sample#Haplotype.
	ByHaplotype
	// Custom groups paths per an externally supplied path->group file.
	Custom
)

// Span describes a path's inclusion/exclusion footprint: Whole means
// the entire path is covered with no coordinate restriction; otherwise
// Intervals holds the sorted, non-overlapping sub-ranges (spec.md §3
// IntervalContainer invariant).
type Span struct {
	Whole     bool
	Intervals []bedio.Interval
}

// PathOrderEntry is one element of the deterministic path traversal
// plan: a path index paired with its group label (spec.md §3 PathOrder
// "group labels appear in contiguous runs").
type PathOrderEntry struct {
	PathIndex int
	Group     string
}

// Mask is GraphMask's output contract (spec.md §4.2 "Output contract").
type Mask struct {
	PathOrder      []PathOrderEntry
	IncludeMap     map[int]Span
	ExcludeMap     map[int]Span
	NeedsPartialBP bool // true only for bp counting with a non-empty include set
}

// GroupOf returns the path index's group label (path_index indexes the
// same Paths slice supplied to Build).
func (m *Mask) GroupOf(pathIndex int) string {
	for _, e := range m.PathOrder {
		if e.PathIndex == pathIndex {
			return e.Group
		}
	}

	return ""
}

// GroupCount returns the number of distinct group labels, i.e. n in
// spec.md's formulas.
func (m *Mask) GroupCount() int {
	_, labels := m.GroupIndices()
	return len(labels)
}

// GroupIndices assigns each PathOrder entry a monotone non-decreasing
// group_index, incremented whenever the group label changes (spec.md
// §4.4 "group_index monotone non-decreasing"), and returns the
// distinct labels in first-appearance order (labels[i] is group i's
// name).
func (m *Mask) GroupIndices() (indices []int, labels []string) {
	indices = make([]int, len(m.PathOrder))
	last := ""
	idx := -1
	for i, e := range m.PathOrder {
		if i == 0 || e.Group != last {
			idx++
			labels = append(labels, e.Group)
			last = e.Group
		}
		indices[i] = idx
	}

	return indices, labels
}
