package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vlaran/pangaea/matrix"
	"github.com/vlaran/pangaea/pathscanner"
	"github.com/vlaran/pangaea/similarity"
)

var (
	similarityMaskFlags  maskFlags
	similarityCountFlag  string
	similarityNoClusterF bool
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <graph.gfa>",
	Short: "Compute pairwise group Jaccard similarity and order it by average-linkage clustering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseCountKind(similarityCountFlag)
		if err != nil {
			return err
		}

		p, err := runPipeline(args[0], kind, &similarityMaskFlags, false)
		if err != nil {
			return err
		}

		g := p.buildGroup(kind == pathscanner.BP)

		m, err := similarity.Jaccard(g, p.nodeLen())
		if err != nil {
			return err
		}

		order := make([]int, len(m.Groups))
		for i := range order {
			order[i] = i
		}
		if !similarityNoClusterF {
			distances := make([][]float64, len(m.Groups))
			for i := range distances {
				distances[i] = make([]float64, len(m.Groups))
				for j := range distances[i] {
					v, err := m.Values.At(i, j)
					if err != nil {
						return err
					}
					distances[i][j] = 1 - v
				}
			}
			order = similarity.Order(distances)
			ordered, err := m.Values.Permute(order)
			if err != nil {
				return err
			}
			m.Values = ordered
		}

		return writeSimilarityTable(cmd.OutOrStdout(), m.Groups, order, m.Values)
	},
}

func writeSimilarityTable(w io.Writer, groups []string, order []int, values *matrix.Dense) error {
	labels := make([]string, len(order))
	for i, oi := range order {
		labels[i] = groups[oi]
	}

	fmt.Fprintf(w, "group\t%s\n", strings.Join(labels, "\t"))
	for i, name := range labels {
		row := make([]string, len(labels))
		for j := range labels {
			v, err := values.At(i, j)
			if err != nil {
				return err
			}
			row[j] = fmt.Sprintf("%g", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(row, "\t"))
	}

	return nil
}

func init() {
	similarityMaskFlags.register(similarityCmd)
	similarityCmd.Flags().StringVar(&similarityCountFlag, "count", "node", "node|edge|bp")
	similarityCmd.Flags().BoolVar(&similarityNoClusterF, "no-cluster", false, "skip average-linkage reordering, keep input group order")
}
