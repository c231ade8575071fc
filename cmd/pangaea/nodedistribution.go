package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/nodedist"
	"github.com/vlaran/pangaea/pathscanner"
)

var (
	nodeDistMaskFlags maskFlags
	nodeDistBinsX     int
	nodeDistBinsY     int
)

var nodeDistributionCmd = &cobra.Command{
	Use:   "node-distribution <graph.gfa>",
	Short: "Bin node coverage against log-node-length into a 2-D grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := runPipeline(args[0], pathscanner.Node, &nodeDistMaskFlags, false)
		if err != nil {
			return err
		}

		total := p.buildTotal(pathscanner.Node)

		grid, err := nodedist.Build(total, p.nodeLen(), nodeDistBinsX, nodeDistBinsY)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# mean_coverage=%g stddev_coverage=%g mean_log_len=%g stddev_log_len=%g\n",
			grid.MeanCoverage, grid.StdDevCoverage, grid.MeanLogLen, grid.StdDevLogLen)
		fmt.Fprintln(w, "coverage_bin\tlog_len_bin\tcount")
		for _, b := range grid.Bins {
			fmt.Fprintf(w, "%d\t%d\t%d\n", b.CoverageIdx, b.LogLenIdx, b.Count)
		}

		return nil
	},
}

func init() {
	nodeDistMaskFlags.register(nodeDistributionCmd)
	nodeDistributionCmd.Flags().IntVar(&nodeDistBinsX, "bins-coverage", 20, "number of coverage-axis bins")
	nodeDistributionCmd.Flags().IntVar(&nodeDistBinsY, "bins-length", 20, "number of log-length-axis bins")
}
