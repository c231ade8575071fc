package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/growth"
	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/nodedist"
	"github.com/vlaran/pangaea/pathscanner"
	"github.com/vlaran/pangaea/report"
	"github.com/vlaran/pangaea/similarity"
	"github.com/vlaran/pangaea/tsv"
)

var (
	reportOutBundle string
	reportOutHTML   string
)

var reportCmd = &cobra.Command{
	Use:   "report <plan.yaml>",
	Short: "Run every analysis named in a YAML report plan, emitting a JSON result bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := report.LoadPlan(args[0])
		if err != nil {
			return err
		}

		bundle := report.NewBundle(plan.Graph, time.Now())
		for i, spec := range plan.Analyses {
			chart, err := runAnalysis(plan.Graph, spec, i)
			if err != nil {
				return fmt.Errorf("analysis %d (%s): %w", i, spec.Type, err)
			}
			bundle.Add(*chart)
		}

		outPath := reportOutBundle
		if outPath == "" {
			outPath = filepath.Join(plan.OutputDir, "bundle.json")
		}
		if err := report.WriteBundle(outPath, bundle); err != nil {
			return err
		}

		if reportOutHTML != "" {
			return writeHTMLFile(reportOutHTML, bundle)
		}

		return nil
	},
}

// runAnalysis executes one AnalysisSpec's pipeline and wraps its
// result in a Chart descriptor, matching spec.md §6's chart taxonomy.
func runAnalysis(gfaPath string, spec report.AnalysisSpec, idx int) (*report.Chart, error) {
	kind, err := parseCountKind(spec.Count)
	if err != nil {
		return nil, err
	}

	flags := &maskFlags{grouping: spec.Grouping, includeFile: spec.Subset, excludeFile: spec.Exclude}
	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("%s-%d", spec.Type, idx)
	}
	chart := &report.Chart{ID: fmt.Sprintf("chart-%d", idx), Name: name}

	switch spec.Type {
	case "hist", "growth", "histgrowth":
		p, err := runPipeline(gfaPath, kind, flags, false)
		if err != nil {
			return nil, err
		}
		total := p.buildTotal(kind)
		h := histogram.FromTotal(total, p.nodeLen())

		chart.Kind = report.KindMultiBar
		labels := make([]string, len(h.Coverage))
		series := map[string][]float64{"hist": make([]float64, len(h.Coverage))}
		for i, c := range h.Coverage {
			labels[i] = fmt.Sprintf("%d", i)
			series["hist"][i] = float64(c)
		}
		if spec.Type != "hist" {
			cov, err := parseThreshold(spec.Coverage, growth.AbsoluteThreshold(1))
			if err != nil {
				return nil, err
			}
			q, err := parseThreshold(spec.Quorum, growth.AbsoluteThreshold(1))
			if err != nil {
				return nil, err
			}
			series["growth"] = growth.CalcGrowth(h, cov, q)
		}
		chart.MultiBar = &report.MultiBarChart{Labels: labels, Series: series}

	case "table":
		p, err := runPipeline(gfaPath, kind, flags, false)
		if err != nil {
			return nil, err
		}
		g := p.buildGroup(kind == pathscanner.BP)
		var label tsv.ItemLabeler
		if kind == pathscanner.Edge {
			label = tsv.EdgeLabeler(p.gs)
		} else {
			label = tsv.SegmentLabeler(p.gs)
		}
		var buf bytes.Buffer
		if err := tsv.WriteByGroupTable(&buf, g, label, nil); err != nil {
			return nil, err
		}
		chart.Kind = report.KindTable
		chart.Table = &report.TableChart{Text: buf.String()}

	case "similarity":
		p, err := runPipeline(gfaPath, kind, flags, false)
		if err != nil {
			return nil, err
		}
		g := p.buildGroup(kind == pathscanner.BP)
		m, err := similarity.Jaccard(g, p.nodeLen())
		if err != nil {
			return nil, err
		}
		chart.Kind = report.KindHeatmap
		values := make([][]float64, len(m.Groups))
		for i := range values {
			values[i] = make([]float64, len(m.Groups))
			for j := range values[i] {
				v, err := m.Values.At(i, j)
				if err != nil {
					return nil, err
				}
				values[i][j] = v
			}
		}
		chart.Heatmap = &report.HeatmapChart{XLabels: m.Groups, YLabels: m.Groups, Values: values}

	case "node-distribution":
		p, err := runPipeline(gfaPath, pathscanner.Node, flags, false)
		if err != nil {
			return nil, err
		}
		total := p.buildTotal(pathscanner.Node)
		grid, err := nodedist.Build(total, p.nodeLen(), 20, 20)
		if err != nil {
			return nil, err
		}
		chart.Kind = report.KindHexbin
		cells := make([]report.HexbinCell, len(grid.Bins))
		for i, b := range grid.Bins {
			cells[i] = report.HexbinCell{CoverageIdx: b.CoverageIdx, LogLenIdx: b.LogLenIdx, Count: b.Count}
		}
		chart.Hexbin = &report.HexbinChart{CoverageEdges: grid.CoverageEdges, LogLenEdges: grid.LogLenEdges, Bins: cells}

	default:
		return nil, fmt.Errorf("unknown analysis type %q", spec.Type)
	}

	return chart, nil
}

func writeHTMLFile(path string, b *report.Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", report.ErrIOFailure, err)
	}
	defer f.Close()

	return report.RenderHTML(f, b)
}

func init() {
	reportCmd.Flags().StringVar(&reportOutBundle, "out", "", "output path for the JSON result bundle (default: <output_dir>/bundle.json)")
	reportCmd.Flags().StringVar(&reportOutHTML, "html", "", "also render a self-contained HTML document to this path")
}
