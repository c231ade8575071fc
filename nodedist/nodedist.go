// Package nodedist summarizes how coverage relates to node length: a
// 2-D grid ("hexbin" in the chart sense, spec.md §6 "Hexbin") of
// log10(node length) against per-node coverage, plus marginal mean/
// stddev summaries for each axis (original_source/src/analyses/node_distribution.rs
// NodeDistribution::set_table, which feeds a d3-hexbin chart from the
// same two series).
package nodedist

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/internal/xlog"
)

var log = xlog.Named("nodedist")

// Bin is one cell of the coverage x log-length grid.
type Bin struct {
	CoverageIdx int // grid column, 0-based
	LogLenIdx   int // grid row, 0-based
	Count       int
}

// Grid is the full binned distribution plus the axis edges needed to
// place each Bin back into coverage/log-length space.
type Grid struct {
	Bins          []Bin
	CoverageEdges []float64 // length nx+1
	LogLenEdges   []float64 // length ny+1

	MeanCoverage, StdDevCoverage float64
	MeanLogLen, StdDevLogLen     float64
}

// Build bins AbacusTotal's node coverage against log10(node length)
// into an nx (coverage) by ny (log-length) grid. t must be node-kind.
func Build(t *abacus.Total, nodeLen func(graphstore.SegmentId) int, nx, ny int) (*Grid, error) {
	n := len(t.Countable) - 1
	if n < 2 {
		return nil, ErrInsufficientData
	}

	coverage := make([]float64, 0, n)
	logLen := make([]float64, 0, n)
	for id := 1; id <= n; id++ {
		coverage = append(coverage, float64(t.Countable[id]))
		l := nodeLen(graphstore.SegmentId(id))
		if l < 1 {
			l = 1
		}
		logLen = append(logLen, math.Log10(float64(l)))
	}

	covEdges := binEdges(coverage, nx)
	lenEdges := binEdges(logLen, ny)

	counts := make(map[[2]int]int)
	for i := range coverage {
		ci := digitize(coverage[i], covEdges)
		li := digitize(logLen[i], lenEdges)
		counts[[2]int{ci, li}]++
	}

	bins := make([]Bin, 0, len(counts))
	for k, c := range counts {
		bins = append(bins, Bin{CoverageIdx: k[0], LogLenIdx: k[1], Count: c})
	}
	sort.Slice(bins, func(i, j int) bool {
		if bins[i].CoverageIdx != bins[j].CoverageIdx {
			return bins[i].CoverageIdx < bins[j].CoverageIdx
		}
		return bins[i].LogLenIdx < bins[j].LogLenIdx
	})

	log.Debug().Int("points", n).Int("bins", len(bins)).Msg("built node distribution grid")

	return &Grid{
		Bins:           bins,
		CoverageEdges:  covEdges,
		LogLenEdges:    lenEdges,
		MeanCoverage:   stat.Mean(coverage, nil),
		StdDevCoverage: stat.StdDev(coverage, nil),
		MeanLogLen:     stat.Mean(logLen, nil),
		StdDevLogLen:   stat.StdDev(logLen, nil),
	}, nil
}

// binEdges returns n+1 equally spaced edges spanning values' range,
// widened by a single ulp on the upper end so the maximum value digitizes
// into the last bin rather than falling just outside it.
func binEdges(values []float64, n int) []float64 {
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		hi = lo + 1
	}
	edges := make([]float64, n+1)
	floats.Span(edges, lo, hi)
	edges[len(edges)-1] = math.Nextafter(edges[len(edges)-1], math.Inf(1))

	return edges
}

// digitize returns the index i such that edges[i] <= v < edges[i+1],
// clamped to the valid bin range.
func digitize(v float64, edges []float64) int {
	idx := sort.SearchFloat64s(edges, v)
	if idx > 0 && edges[idx] != v {
		idx--
	}
	if idx >= len(edges)-1 {
		idx = len(edges) - 2
	}
	if idx < 0 {
		idx = 0
	}

	return idx
}
