package graphmask

import (
	"fmt"

	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/bedio"
	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("graphmask")

// BuildOptions configures Build. CustomGroupFile is read when Mode ==
// Custom. Include/Exclude are parsed bedio entries (nil for "not
// given"). OrderPaths, if non-empty, is an explicit path order (as
// literal path identifiers) overriding the include-list/graph-order
// fallback chain.
type BuildOptions struct {
	Mode            GroupingMode
	CustomGroupFile string
	Include         []bedio.Entry
	Exclude         []bedio.Entry
	OrderPaths      []string
	IsBPCountKind   bool
}

// Build turns paths (in GraphStore.PathNames order) plus opts into a
// Mask, per spec.md §4.2's four-step algorithm.
func Build(paths []string, opts BuildOptions) (*Mask, error) {
	groupOf, err := assignGroups(paths, opts.Mode, opts.CustomGroupFile)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(paths))
	for i, p := range paths {
		byName[p] = i
	}
	byGroup := make(map[string][]int)
	for i, p := range paths {
		g := groupOf[p]
		byGroup[g] = append(byGroup[g], i)
	}

	includeMap, err := expandSpans(opts.Include, byName, byGroup)
	if err != nil {
		return nil, err
	}
	excludeMap, err := expandSpans(opts.Exclude, byName, byGroup)
	if err != nil {
		return nil, err
	}

	order, explicit, err := basePathOrder(paths, byName, opts.OrderPaths, includeMap)
	if err != nil {
		return nil, err
	}

	grouped, err := partitionContiguous(order, paths, groupOf, explicit)
	if err != nil {
		return nil, err
	}

	entries := make([]PathOrderEntry, 0, len(grouped))
	for _, idx := range grouped {
		entries = append(entries, PathOrderEntry{PathIndex: idx, Group: groupOf[paths[idx]]})
	}

	return &Mask{
		PathOrder:      entries,
		IncludeMap:     includeMap,
		ExcludeMap:     excludeMap,
		NeedsPartialBP: opts.IsBPCountKind && len(includeMap) > 0,
	}, nil
}

// assignGroups builds path -> group_label per spec.md §4.2 step 1.
func assignGroups(paths []string, mode GroupingMode, customFile string) (map[string]string, error) {
	groupOf := make(map[string]string, len(paths))

	var custom map[string]string
	if mode == Custom {
		var err error
		custom, err = loadCustomGroups(customFile)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range paths {
		ps, err := graphstore.ParsePathSegment(p)
		if err != nil {
			return nil, err
		}
		switch mode {
		case BySample:
			groupOf[p] = ps.Sample
		case ByHaplotype:
			if ps.HasHap {
				groupOf[p] = ps.Sample + "#" + ps.Haplotype
			} else {
				groupOf[p] = ps.Sample
			}
		case Custom:
			if g, ok := custom[p]; ok {
				groupOf[p] = g
			} else if g, ok := custom[ps.Identity()]; ok {
				groupOf[p] = g
			} else {
				groupOf[p] = p // augment with default group, spec.md §4.2 step 1
			}
		default: // Default
			groupOf[p] = p
		}
	}

	return groupOf, nil
}

func loadCustomGroups(file string) (map[string]string, error) {
	if file == "" {
		return map[string]string{}, nil
	}

	return bedio.ParseGroupFile(file)
}

// expandSpans resolves a list of bedio Entries (naming either a path or
// a group) into a per-path-index Span map, per spec.md §4.2 step 2-3.
func expandSpans(entries []bedio.Entry, byName map[string]int, byGroup map[string][]int) (map[int]Span, error) {
	out := make(map[int]Span)
	for _, e := range entries {
		hasCoords := len(e.Intervals) > 0
		if idx, ok := byName[e.Name]; ok {
			mergeSpan(out, idx, e.Intervals)
			continue
		}
		if members, ok := byGroup[e.Name]; ok {
			if hasCoords {
				return nil, fmt.Errorf("%w: group name %q cannot carry an explicit coordinate range", ErrMaskConflict, e.Name)
			}
			for _, idx := range members {
				mergeSpan(out, idx, nil)
			}
			continue
		}
		log.Warn().Str("name", e.Name).Msg("include/exclude entry does not match any known path or group")
	}

	return out, nil
}

func mergeSpan(out map[int]Span, idx int, intervals []bedio.Interval) {
	cur := out[idx]
	if cur.Whole {
		return
	}
	if len(intervals) == 0 {
		out[idx] = Span{Whole: true}
		return
	}
	merged := bedio.MergeSorted(append(append([]bedio.Interval{}, cur.Intervals...), intervals...))
	out[idx] = Span{Intervals: merged}
}

// basePathOrder picks the explicit order (translated to path indices),
// else the include list's path order, else the graph's path order
// (spec.md §4.2 step 4).
func basePathOrder(paths []string, byName map[string]int, explicitOrder []string, includeMap map[int]Span) ([]int, bool, error) {
	if len(explicitOrder) > 0 {
		order := make([]int, 0, len(explicitOrder))
		for _, name := range explicitOrder {
			idx, ok := byName[name]
			if !ok {
				log.Warn().Str("path", name).Msg("order file names a path not present in the graph")
				continue
			}
			order = append(order, idx)
		}

		return order, true, nil
	}

	if len(includeMap) > 0 {
		order := make([]int, 0, len(includeMap))
		for idx := range includeMap {
			order = append(order, idx)
		}
		// deterministic: ascending path index (include_map has no
		// inherent file order once merged into a map).
		insertionSort(order)

		return order, false, nil
	}

	order := make([]int, len(paths))
	for i := range paths {
		order[i] = i
	}

	return order, false, nil
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// partitionContiguous stably groups order by label so that each group's
// paths form one contiguous run. When explicit is true (the order came
// from a user-supplied order file), a base sequence whose groups are
// already interleaved is rejected instead of silently reordered
// (spec.md §4.2 step 4 "reject if the order file interleaves groups").
func partitionContiguous(order []int, paths []string, groupOf map[string]string, explicit bool) ([]int, error) {
	if explicit && isInterleaved(order, paths, groupOf) {
		return nil, fmt.Errorf("%w: order file interleaves group labels", ErrMaskConflict)
	}

	seenFirst := make(map[string]int)
	var groupsInFirstSeenOrder []string
	buckets := make(map[string][]int)
	for _, idx := range order {
		g := groupOf[paths[idx]]
		if _, ok := seenFirst[g]; !ok {
			seenFirst[g] = len(groupsInFirstSeenOrder)
			groupsInFirstSeenOrder = append(groupsInFirstSeenOrder, g)
		}
		buckets[g] = append(buckets[g], idx)
	}

	out := make([]int, 0, len(order))
	for _, g := range groupsInFirstSeenOrder {
		out = append(out, buckets[g]...)
	}

	return out, nil
}

func isInterleaved(order []int, paths []string, groupOf map[string]string) bool {
	closed := make(map[string]bool)
	last := ""
	for _, idx := range order {
		g := groupOf[paths[idx]]
		if g == last {
			continue
		}
		if closed[g] {
			return true
		}
		if last != "" {
			closed[last] = true
		}
		last = g
	}

	return false
}
