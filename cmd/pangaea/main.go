// Command pangaea computes pangenome coverage statistics (histograms,
// growth curves, per-group coverage tables, similarity heatmaps, and
// node-length distributions) from a GFA1 variation graph.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
