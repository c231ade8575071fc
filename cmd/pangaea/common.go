package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphmask"
	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/growth"
	"github.com/vlaran/pangaea/internal/bedio"
	"github.com/vlaran/pangaea/pathscanner"
)

// maskFlags are the grouping/subsetting/ordering options shared by
// every subcommand that drives the core pipeline.
type maskFlags struct {
	grouping    string // "default", "sample", "haplotype", or a custom group-file path
	includeFile string
	excludeFile string
	orderFile   string
}

func (f *maskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.grouping, "grouping", "default", "default|sample|haplotype|<custom group file>")
	cmd.Flags().StringVar(&f.includeFile, "subset", "", "BED/path-list file restricting the scan to these coordinates")
	cmd.Flags().StringVar(&f.excludeFile, "exclude", "", "BED/path-list file excluding these coordinates")
	cmd.Flags().StringVar(&f.orderFile, "order", "", "file giving an explicit path presentation order")
}

func (f *maskFlags) buildOptions(isBP bool) (graphmask.BuildOptions, error) {
	opts := graphmask.BuildOptions{IsBPCountKind: isBP}

	switch f.grouping {
	case "", "default":
		opts.Mode = graphmask.Default
	case "sample":
		opts.Mode = graphmask.BySample
	case "haplotype":
		opts.Mode = graphmask.ByHaplotype
	default:
		opts.Mode = graphmask.Custom
		opts.CustomGroupFile = f.grouping
	}

	if f.includeFile != "" {
		entries, err := bedio.ParseBED(f.includeFile)
		if err != nil {
			return opts, err
		}
		opts.Include = entries
	}
	if f.excludeFile != "" {
		entries, err := bedio.ParseBED(f.excludeFile)
		if err != nil {
			return opts, err
		}
		opts.Exclude = entries
	}
	if f.orderFile != "" {
		entries, err := bedio.ParseBED(f.orderFile)
		if err != nil {
			return opts, err
		}
		for _, e := range entries {
			opts.OrderPaths = append(opts.OrderPaths, e.Name)
		}
	}

	return opts, nil
}

// pipeline bundles the result of running GraphStore -> GraphMask ->
// PathScanner once, so a subcommand can build its abaci (buildTotal,
// buildGroup) from the same scan.
type pipeline struct {
	gs   *graphstore.GraphStore
	mask *graphmask.Mask
	res  *pathscanner.Result
}

func runPipeline(gfaPath string, kind pathscanner.CountKind, flags *maskFlags, niceOrder bool) (*pipeline, error) {
	needEdges := kind == pathscanner.Edge
	gs, err := graphstore.Load(gfaPath, needEdges, niceOrder)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", gfaPath, err)
	}

	opts, err := flags.buildOptions(kind == pathscanner.BP)
	if err != nil {
		return nil, err
	}
	mask, err := graphmask.Build(gs.PathNames(), opts)
	if err != nil {
		return nil, err
	}

	res, err := pathscanner.Scan(gfaPath, gs, mask, kind, threads())
	if err != nil {
		return nil, err
	}

	return &pipeline{gs: gs, mask: mask, res: res}, nil
}

func (p *pipeline) countableSpace(kind pathscanner.CountKind) int {
	if kind == pathscanner.Edge {
		return p.gs.EdgeCount()
	}

	return p.gs.SegmentCount()
}

func (p *pipeline) nodeLen() func(graphstore.SegmentId) int {
	return func(id graphstore.SegmentId) int { return p.gs.SegmentLength(id) }
}

func (p *pipeline) buildTotal(kind pathscanner.CountKind) *abacus.Total {
	indices, labels := p.mask.GroupIndices()

	return abacus.BuildTotal(p.res, indices, labels, p.countableSpace(kind), p.nodeLen())
}

func (p *pipeline) buildGroup(needVal bool) *abacus.Group {
	indices, labels := p.mask.GroupIndices()
	kind := p.res.Kind

	return abacus.BuildGroup(p.res, indices, labels, p.countableSpace(kind), needVal, p.nodeLen())
}

// parseThreshold accepts either a bare integer ("3") as an absolute
// count or a "0.n" / trailing-"%" form as a fraction of n, per
// spec.md §4.7 "Thresholds".
func parseThreshold(s string, def growth.Threshold) (growth.Threshold, error) {
	if s == "" {
		return def, nil
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return def, fmt.Errorf("bad percentage threshold %q: %w", s, err)
		}

		return growth.RelativeThreshold(v / 100), nil
	}
	if strings.Contains(s, ".") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def, fmt.Errorf("bad fractional threshold %q: %w", s, err)
		}

		return growth.RelativeThreshold(v), nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def, fmt.Errorf("bad threshold %q: %w", s, err)
	}

	return growth.AbsoluteThreshold(v), nil
}

// thresholdFlags are the repeatable --coverage/--quorum pairs shared by
// the growth-curve subcommands.
type thresholdFlags struct {
	coverage []string
	quorum   []string
}

func (f *thresholdFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.coverage, "coverage", []string{"1"}, "coverage threshold(s), absolute or fractional")
	cmd.Flags().StringSliceVar(&f.quorum, "quorum", []string{"1"}, "quorum threshold(s), absolute or fractional")
}

// thresholdPair bundles a resolved (coverage, quorum) Threshold pair
// with the raw flag text used to label the resulting growth column.
type thresholdPair struct {
	coverage, quorum       growth.Threshold
	coverageRaw, quorumRaw string
}

// pairs resolves the coverage/quorum flag lists into a parallel slice
// of Threshold pairs, cycling the shorter list per panacus convention.
func (f *thresholdFlags) pairs() ([]thresholdPair, error) {
	nc, nq := len(f.coverage), len(f.quorum)
	n := nc
	if nq > n {
		n = nq
	}
	if n == 0 {
		n = 1
	}

	out := make([]thresholdPair, 0, n)
	for i := 0; i < n; i++ {
		cs := "1"
		if nc > 0 {
			cs = f.coverage[i%nc]
		}
		qs := "1"
		if nq > 0 {
			qs = f.quorum[i%nq]
		}
		c, err := parseThreshold(cs, growth.AbsoluteThreshold(1))
		if err != nil {
			return nil, err
		}
		q, err := parseThreshold(qs, growth.AbsoluteThreshold(1))
		if err != nil {
			return nil, err
		}
		out = append(out, thresholdPair{coverage: c, quorum: q, coverageRaw: cs, quorumRaw: qs})
	}

	return out, nil
}

func parseCountKind(s string) (pathscanner.CountKind, error) {
	switch s {
	case "", "node":
		return pathscanner.Node, nil
	case "edge":
		return pathscanner.Edge, nil
	case "bp":
		return pathscanner.BP, nil
	default:
		return 0, fmt.Errorf("unknown count kind %q (want node, edge, or bp)", s)
	}
}
