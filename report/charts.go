// Package report defines the YAML-driven report plan format, the
// typed chart descriptors the CLI's `render` subcommand embeds into
// HTML output, and a JSON result-bundle format that lets `report` and
// `render` run as separate processes over the same analysis results
// (spec.md §6 "HTML output", "CLI surface"). Grounded on the
// original_source/src/html_report.rs ReportItem enum, re-expressed as
// a small closed set of Go struct kinds instead of a Rust enum.
package report

// ChartKind identifies which of the six chart records a Chart value
// holds.
type ChartKind string

const (
	KindBar      ChartKind = "bar"
	KindMultiBar ChartKind = "multibar"
	KindHeatmap  ChartKind = "heatmap"
	KindTable    ChartKind = "table"
	KindHexbin   ChartKind = "hexbin"
	KindLine     ChartKind = "line"
)

// Chart is one typed plot descriptor. Exactly one of the Bar/MultiBar/
// Heatmap/Table/Hexbin/Line fields is populated, selected by Kind; this
// mirrors the tagged-union shape of the Rust ReportItem enum without
// Go sum types.
type Chart struct {
	ID   string    `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Kind ChartKind `json:"kind" yaml:"kind"`

	Bar      *BarChart      `json:"bar,omitempty" yaml:"bar,omitempty"`
	MultiBar *MultiBarChart `json:"multi_bar,omitempty" yaml:"multi_bar,omitempty"`
	Heatmap  *HeatmapChart  `json:"heatmap,omitempty" yaml:"heatmap,omitempty"`
	Table    *TableChart    `json:"table,omitempty" yaml:"table,omitempty"`
	Hexbin   *HexbinChart   `json:"hexbin,omitempty" yaml:"hexbin,omitempty"`
	Line     *LineChart     `json:"line,omitempty" yaml:"line,omitempty"`
}

// BarChart is a single series of (label, value) bars, e.g. a coverage
// histogram at one threshold.
type BarChart struct {
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

// MultiBarChart is several named series sharing one label axis, e.g.
// several growth curves over the same subset sizes.
type MultiBarChart struct {
	Labels []string             `json:"labels" yaml:"labels"`
	Series map[string][]float64 `json:"series" yaml:"series"`
}

// HeatmapChart is a square matrix with row/column labels, e.g. the
// similarity package's reordered Jaccard matrix.
type HeatmapChart struct {
	XLabels []string    `json:"x_labels" yaml:"x_labels"`
	YLabels []string    `json:"y_labels" yaml:"y_labels"`
	Values  [][]float64 `json:"values" yaml:"values"`
}

// TableChart embeds a preformatted TSV/text table verbatim, for charts
// that are better read than plotted (spec.md §6 "a single
// self-contained document embedding the table as text").
type TableChart struct {
	Text string `json:"text" yaml:"text"`
}

// HexbinChart carries nodedist's grid cells directly.
type HexbinChart struct {
	CoverageEdges []float64    `json:"coverage_edges" yaml:"coverage_edges"`
	LogLenEdges   []float64    `json:"log_len_edges" yaml:"log_len_edges"`
	Bins          []HexbinCell `json:"bins" yaml:"bins"`
}

// HexbinCell is one populated grid cell.
type HexbinCell struct {
	CoverageIdx int `json:"coverage_idx" yaml:"coverage_idx"`
	LogLenIdx   int `json:"log_len_idx" yaml:"log_len_idx"`
	Count       int `json:"count" yaml:"count"`
}

// LineChart is an X/Y series, e.g. a single growth curve.
type LineChart struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}
