// Package tsv renders the core's outputs in the flat tab-separated
// formats described in spec.md §6: a histogram/growth table (one row
// per coverage level) and a by-group coverage table (one row per
// countable). Both writers are pure formatting over already-computed
// results; no parsing or aggregation lives here.
package tsv

import (
	"fmt"
	"io"
	"strings"
)

// GrowthColumn is one named growth-curve column in the histogram
// table: a coverage/quorum threshold pair plus the values themselves,
// indexed by subset size m = 1..n (Values[0] corresponds to m=1).
type GrowthColumn struct {
	Label  string // e.g. "growth(coverage=1,quorum=0)"
	Values []float64
}

// HistogramTable is everything WriteHistogramTable needs to render one
// histogram-and-growth-curves table for a single count kind.
type HistogramTable struct {
	Argv       string // the command line that produced this table, for the "# <argv>" comment
	Version    string
	CountKind  string // "node", "edge", or "bp"
	Coverage   []int  // hist[0..n]
	GrowthCols []GrowthColumn
}

// WriteHistogramTable writes the coverage histogram (and any growth
// columns) as TSV to w, per spec.md §6 "Histogram table": comment
// lines identifying the run, a header row, and one data row per
// coverage level 0..n carrying that level's hist count plus each
// requested growth column's value at subset size m=level.
func WriteHistogramTable(w io.Writer, t HistogramTable) error {
	if _, err := fmt.Fprintf(w, "# %s\n# version %s\n", t.Argv, t.Version); err != nil {
		return err
	}

	header := []string{"panacus", "count", "coverage"}
	for _, gc := range t.GrowthCols {
		header = append(header, gc.Label)
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}

	n := len(t.Coverage) - 1
	for level := 0; level <= n; level++ {
		row := []string{"panacus", t.CountKind, fmt.Sprintf("%d", t.Coverage[level])}
		for _, gc := range t.GrowthCols {
			if level == 0 || level > len(gc.Values) {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprintf("%g", gc.Values[level-1]))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return nil
}
