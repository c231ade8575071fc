package main

import (
	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/histogram"
	"github.com/vlaran/pangaea/tsv"
)

var (
	histMaskFlags maskFlags
	histCountFlag string
)

var histCmd = &cobra.Command{
	Use:   "hist <graph.gfa>",
	Short: "Compute a coverage histogram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseCountKind(histCountFlag)
		if err != nil {
			return err
		}

		p, err := runPipeline(args[0], kind, &histMaskFlags, false)
		if err != nil {
			return err
		}

		total := p.buildTotal(kind)
		h := histogram.FromTotal(total, p.nodeLen())

		table := tsv.HistogramTable{
			Argv:      cmd.CommandPath(),
			Version:   "pangaea",
			CountKind: kind.String(),
			Coverage:  h.Coverage,
		}

		return tsv.WriteHistogramTable(cmd.OutOrStdout(), table)
	},
}

func init() {
	histMaskFlags.register(histCmd)
	histCmd.Flags().StringVar(&histCountFlag, "count", "node", "node|edge|bp")
}
