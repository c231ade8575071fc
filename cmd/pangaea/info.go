package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/graphstore"
)

var infoCmd = &cobra.Command{
	Use:   "info <graph.gfa>",
	Short: "Print graph statistics: segment/edge/path counts, node length, and connected components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gs, err := graphstore.Load(args[0], true, false)
		if err != nil {
			return err
		}

		n := gs.SegmentCount()
		totalLen := 0
		for id := 1; id <= n; id++ {
			totalLen += gs.SegmentLength(graphstore.SegmentId(id))
		}
		avgLen := 0.0
		if n > 0 {
			avgLen = float64(totalLen) / float64(n)
		}

		components, err := gs.ConnectedComponents()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "segments\t%d\n", n)
		fmt.Fprintf(w, "edges\t%d\n", gs.EdgeCount())
		fmt.Fprintf(w, "paths\t%d\n", len(gs.PathNames()))
		fmt.Fprintf(w, "total_node_length\t%d\n", totalLen)
		fmt.Fprintf(w, "average_node_length\t%g\n", avgLen)
		fmt.Fprintf(w, "connected_components\t%d\n", components)

		return nil
	},
}
