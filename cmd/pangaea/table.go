package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/graphstore"
	"github.com/vlaran/pangaea/pathscanner"
	"github.com/vlaran/pangaea/tsv"
)

var (
	tableMaskFlags maskFlags
	tableCountFlag string
	tableBPScale   bool
	tableOutputFmt string
)

var tableCmd = &cobra.Command{
	Use:   "table <graph.gfa>",
	Short: "Write a per-group presence/coverage table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseCountKind(tableCountFlag)
		if err != nil {
			return err
		}

		p, err := runPipeline(args[0], kind, &tableMaskFlags, false)
		if err != nil {
			return err
		}

		g := p.buildGroup(true)

		var label tsv.ItemLabeler
		if kind == pathscanner.Edge {
			label = tsv.EdgeLabeler(p.gs)
		} else {
			label = tsv.SegmentLabeler(p.gs)
		}

		var scale tsv.BPScale
		if tableBPScale && kind != pathscanner.Edge {
			scale = func(id int) int { return p.gs.SegmentLength(graphstore.SegmentId(id)) }
		}

		switch tableOutputFmt {
		case "tsv", "":
			return tsv.WriteByGroupTable(cmd.OutOrStdout(), g, label, scale)
		case "pretty":
			return tsv.WriteByGroupPretty(cmd.OutOrStdout(), g, label, scale)
		default:
			return fmt.Errorf("unknown --output-format %q (want tsv|pretty)", tableOutputFmt)
		}
	},
}

func init() {
	tableMaskFlags.register(tableCmd)
	tableCmd.Flags().StringVar(&tableCountFlag, "count", "node", "node|edge|bp")
	tableCmd.Flags().BoolVar(&tableBPScale, "bp-scale", false, "scale each cell by segment length")
	tableCmd.Flags().StringVar(&tableOutputFmt, "output-format", "tsv", "tsv|pretty")
}
