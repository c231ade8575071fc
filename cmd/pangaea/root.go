package main

import (
	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/internal/runtimeconf"
	"github.com/vlaran/pangaea/internal/xlog"
)

var (
	verboseCount int
	threadsFlag  int

	rootCmd = &cobra.Command{
		Use:   "pangaea",
		Short: "Pangenome coverage statistics over GFA1 variation graphs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			xlog.SetVerbose(verboseCount)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().IntVar(&threadsFlag, "threads", 0, "worker-pool size (default: auto)")

	rootCmd.AddCommand(infoCmd, histCmd, growthCmd, histgrowthCmd, orderedHistgrowthCmd,
		tableCmd, similarityCmd, nodeDistributionCmd, reportCmd, renderCmd)
}

// threads resolves the effective worker-pool size for this invocation.
func threads() int { return runtimeconf.Threads(threadsFlag) }
