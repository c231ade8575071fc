package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/report"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <bundle.json>...",
	Short: "Combine one or more JSON result bundles into a self-contained HTML document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundles := make([]*report.Bundle, 0, len(args))
		for _, path := range args {
			b, err := report.LoadBundle(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			bundles = append(bundles, b)
		}

		merged := report.Merge(time.Now(), bundles...)

		if renderOut == "" {
			return report.RenderHTML(cmd.OutOrStdout(), merged)
		}

		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("%w: %v", report.ErrIOFailure, err)
		}
		defer f.Close()

		return report.RenderHTML(f, merged)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output path for the HTML document (default: stdout)")
}
