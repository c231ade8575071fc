package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/growth"
	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/pathscanner"
	"github.com/vlaran/pangaea/tsv"
)

var (
	histgrowthMaskFlags      maskFlags
	histgrowthThresholdFlags thresholdFlags
	histgrowthCountFlag      string

	orderedMaskFlags      maskFlags
	orderedThresholdFlags thresholdFlags
	orderedCountFlag      string
)

var histgrowthCmd = &cobra.Command{
	Use:   "histgrowth <graph.gfa>",
	Short: "Compute a coverage histogram together with its growth curves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseCountKind(histgrowthCountFlag)
		if err != nil {
			return err
		}

		p, err := runPipeline(args[0], kind, &histgrowthMaskFlags, false)
		if err != nil {
			return err
		}

		total := p.buildTotal(kind)
		h := histogram.FromTotal(total, p.nodeLen())

		pairs, err := histgrowthThresholdFlags.pairs()
		if err != nil {
			return err
		}

		table := tsv.HistogramTable{
			Argv:      cmd.CommandPath(),
			Version:   "pangaea",
			CountKind: kind.String(),
			Coverage:  h.Coverage,
		}
		for _, pair := range pairs {
			values := growth.CalcGrowth(h, pair.coverage, pair.quorum)
			table.GrowthCols = append(table.GrowthCols, tsv.GrowthColumn{
				Label:  fmt.Sprintf("growth.coverage=%s.quorum=%s", pair.coverageRaw, pair.quorumRaw),
				Values: values,
			})
		}

		return tsv.WriteHistogramTable(cmd.OutOrStdout(), table)
	},
}

var orderedHistgrowthCmd = &cobra.Command{
	Use:   "ordered-histgrowth <graph.gfa>",
	Short: "Compute growth curves following the input path order (no union bound)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseCountKind(orderedCountFlag)
		if err != nil {
			return err
		}

		p, err := runPipeline(args[0], kind, &orderedMaskFlags, false)
		if err != nil {
			return err
		}

		g := p.buildGroup(kind == pathscanner.BP)
		h := histogram.FromTotal(p.buildTotal(kind), p.nodeLen())

		pairs, err := orderedThresholdFlags.pairs()
		if err != nil {
			return err
		}

		table := tsv.HistogramTable{
			Argv:      cmd.CommandPath(),
			Version:   "pangaea",
			CountKind: kind.String(),
			Coverage:  h.Coverage,
		}
		for _, pair := range pairs {
			values := growth.Ordered(g, pair.coverage, pair.quorum, p.nodeLen())
			table.GrowthCols = append(table.GrowthCols, tsv.GrowthColumn{
				Label:  fmt.Sprintf("ordered.coverage=%s.quorum=%s", pair.coverageRaw, pair.quorumRaw),
				Values: values,
			})
		}

		return tsv.WriteHistogramTable(cmd.OutOrStdout(), table)
	},
}

func init() {
	histgrowthMaskFlags.register(histgrowthCmd)
	histgrowthThresholdFlags.register(histgrowthCmd)
	histgrowthCmd.Flags().StringVar(&histgrowthCountFlag, "count", "node", "node|edge|bp")

	orderedMaskFlags.register(orderedHistgrowthCmd)
	orderedThresholdFlags.register(orderedHistgrowthCmd)
	orderedHistgrowthCmd.Flags().StringVar(&orderedCountFlag, "count", "node", "node|edge|bp")
}
