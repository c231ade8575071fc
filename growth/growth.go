// Package growth implements GrowthEstimator (spec.md §4.7): closed-form
// pangenome growth curves across subset sizes m = 1..n, computed from a
// histogram (union/core/quorum regimes) or from an AbacusGroup CSR
// matrix with an explicit order (the "ordered" variant). All binomial
// products are accumulated in log2 space to avoid overflow for
// realistic n (spec.md §9 "Numeric stability of growth"), following
// the original implementation's hist.rs / abacus.rs formulas verbatim.
package growth

import (
	"math"

	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("growth")

// Choose returns log2(C(n,k)), or 0 for invalid inputs (spec.md §4.7
// "choose(n,k) in log2").
func Choose(n, k int) float64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	res := 0.0
	for i := 0; i < k; i++ {
		res += math.Log2(float64(n-i)) - math.Log2(float64(i+1))
	}

	return res
}

// CalcGrowth dispatches between the union, core, and quorum regimes
// based on the resolved quorum threshold, per spec.md §4.7 "Three
// regimes".
func CalcGrowth(h *histogram.Hist, tCoverage, tQuorum Threshold) []float64 {
	n := h.N()
	if n <= 0 {
		return nil
	}

	quorum := tQuorum.ToAbsolute(n)
	if quorum < 1 {
		quorum = 1
	}
	log.Debug().Int("n", n).Int("quorum", quorum).Msg("calculating growth")

	switch {
	case quorum == 1:
		return calcUnion(h.Coverage, tCoverage)
	case quorum >= n:
		return calcCore(h.Coverage, tCoverage)
	default:
		return calcQuorum(h.Coverage, tCoverage, tQuorum)
	}
}

// calcUnion implements the relative-quorum-0 regime of spec.md §4.7:
//
//	growth[m] = (sum_{i>=c} hist[i]) - sum_{i=c..n-m} hist[i] * C(n-i,m)/C(n,m)
func calcUnion(hist []int, tCoverage Threshold) []float64 {
	n := len(hist) - 1
	c := tCoverage.ToAbsolute(n)
	if c < 1 {
		c = 1
	}

	tot := 0.0
	for i := c; i <= n; i++ {
		tot += float64(hist[i])
	}

	pangrowth := make([]float64, n)
	nFallM := 0.0
	percMult := make([]float64, n+1)
	for m := 1; m <= n; m++ {
		y := 0.0
		nFallM += math.Log2(float64(n - m + 1))
		for i := c; i <= n-m; i++ {
			percMult[i] += math.Log2(float64(n - m - i + 1))
			y += math.Exp2(math.Log2(float64(hist[i])) + percMult[i] - nFallM)
		}
		pangrowth[m-1] = tot - y
	}

	return pangrowth
}

// calcCore implements the quorum==1 regime of spec.md §4.7:
//
//	growth[m] = sum_{i>=max(m,c)} hist[i] * C(i,m)/C(n,m)
func calcCore(hist []int, tCoverage Threshold) []float64 {
	n := len(hist) - 1
	c := tCoverage.ToAbsolute(n + 1)
	if c < 1 {
		c = 1
	}

	pangrowth := make([]float64, n)
	nFallM := 0.0
	percMult := make([]float64, n+1)
	for m := 1; m <= n; m++ {
		y := 0.0
		nFallM += math.Log2(float64(n - m + 1))
		start := m
		if c > start {
			start = c
		}
		for i := start; i <= n; i++ {
			percMult[i] += math.Log2(float64(i - m + 1))
			y += math.Exp2(math.Log2(float64(hist[i])) + percMult[i] - nFallM)
		}
		pangrowth[m-1] = y
	}

	return pangrowth
}

// calcQuorum implements the intermediate-quorum regime of spec.md
// §4.7: the core-formula part (multiplicity >= m) plus, for each
// intermediate multiplicity, the quorum-satisfying overlap-count
// contributions.
func calcQuorum(hist []int, tCoverage, tQuorum Threshold) []float64 {
	n := len(hist) - 1
	c := tCoverage.ToAbsolute(n)
	if c < 1 {
		c = 1
	}
	quorum := tQuorum.ToRelative(n)

	pangrowth := make([]float64, n)
	nFallM := 0.0
	mFact := 0.0
	percMult := make([]float64, n+1)
	q := make([][]float64, n+1)
	for i := range q {
		q[i] = make([]float64, n+1)
	}

	for m := 1; m <= n; m++ {
		mFact += math.Log2(float64(m))
		mQuorum := int(math.Ceil(float64(m) * quorum))

		yl := 0.0
		nFallM += math.Log2(float64(n - m + 1))
		start := m
		if c > start {
			start = c
		}
		for i := start; i <= n; i++ {
			percMult[i] += math.Log2(float64(i - m + 1))
			yl += math.Exp2(math.Log2(float64(hist[i])) + percMult[i] - nFallM)
		}

		yr := 0.0
		for i := mQuorum; i < n; i++ {
			sumQ := 0.0
			add := false
			jStart := mQuorum
			if c > jStart {
				jStart = c
			}
			for j := jStart; j < m; j++ {
				if n+j+1 > i+m && j <= i {
					if q[i][j] == 0 {
						q[i][j] = Choose(i, j)
					}
					q[i][j] += math.Log2(float64(n - i - m + 1 + j))
					q[i][j] -= math.Log2(float64(m - j))
					sumQ += math.Exp2(q[i][j] + mFact - nFallM)
					add = true
				}
			}
			if add {
				yr += math.Exp2(math.Log2(float64(hist[i])) + math.Log2(sumQ))
			}
		}
		pangrowth[m-1] = yl + yr
	}

	return pangrowth
}
