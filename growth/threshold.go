package growth

import "math"

// Threshold is a (coverage, quorum) parameter that may be given as an
// absolute integer or as a fraction of n (spec.md §4.7 "Thresholds").
type Threshold struct {
	relative bool
	value    float64
}

// AbsoluteThreshold constructs a Threshold carrying a literal integer.
func AbsoluteThreshold(v int) Threshold {
	return Threshold{value: float64(v)}
}

// RelativeThreshold constructs a Threshold carrying a fraction of n.
func RelativeThreshold(v float64) Threshold {
	return Threshold{relative: true, value: v}
}

// ToAbsolute resolves the threshold to an absolute integer given n.
func (t Threshold) ToAbsolute(n int) int {
	if t.relative {
		return int(math.Round(t.value * float64(n)))
	}

	return int(t.value)
}

// ToRelative resolves the threshold to a fraction of n.
func (t Threshold) ToRelative(n int) float64 {
	if t.relative {
		return t.value
	}
	if n == 0 {
		return 0
	}

	return t.value / float64(n)
}
