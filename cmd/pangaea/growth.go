package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/growth"
	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/tsv"
)

var (
	growthMaskFlags      maskFlags
	growthThresholdFlags thresholdFlags
	growthCountFlag      string
)

var growthCmd = &cobra.Command{
	Use:   "growth <graph.gfa>",
	Short: "Compute pangenome growth curves (union/core/quorum)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseCountKind(growthCountFlag)
		if err != nil {
			return err
		}

		p, err := runPipeline(args[0], kind, &growthMaskFlags, false)
		if err != nil {
			return err
		}

		total := p.buildTotal(kind)
		h := histogram.FromTotal(total, p.nodeLen())

		pairs, err := growthThresholdFlags.pairs()
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

func init() {
	growthMaskFlags.register(growthCmd)
	growthThresholdFlags.register(growthCmd)
	growthCmd.Flags().StringVar(&growthCountFlag, "count", "node", "node|edge|bp")
}
