package pathscanner

import "github.com/vlaran/pangaea/internal/bedio"

// clampLocal intersects span's intervals with the segment's global byte
// range [p, p+l) and returns the overlap as a LOCAL [a,b) subrange of
// [0,l), per spec.md §4.3 step 3 ("clamp to [a,b) ⊂ [0,l)"). A Whole
// span always returns the full [0,l).
func clampLocal(whole bool, intervals []bedio.Interval, p, l int) (a, b int, any bool) {
	if whole {
		return 0, l, true
	}

	segStart, segEnd := p, p+l
	for _, iv := range intervals {
		if iv.End <= segStart {
			continue
		}
		if iv.Start >= segEnd {
			break
		}
		lo := iv.Start
		if lo < segStart {
			lo = segStart
		}
		hi := iv.End
		if hi > segEnd {
			hi = segEnd
		}
		if hi > lo {
			return lo - segStart, hi - segStart, true
		}
	}

	return 0, 0, false
}

// invertBackward applies spec.md §4.3 step 4: for backward-oriented
// occurrences, (a,b) -> (l-b, l-a).
func invertBackward(a, b, l int) (int, int) {
	return l - b, l - a
}

// subtractLocal removes the [ea,eb) exclude window from [ia,ib),
// returning the resulting covered sub-intervals (0, 1, or 2 of them).
func subtractLocal(ia, ib int, hasExclude bool, ea, eb int) [][2]int {
	if !hasExclude || eb <= ia || ea >= ib {
		return [][2]int{{ia, ib}}
	}

	var out [][2]int
	if ea > ia {
		out = append(out, [2]int{ia, ea})
	}
	if eb < ib {
		out = append(out, [2]int{eb, ib})
	}

	return out
}
