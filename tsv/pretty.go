package tsv

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vlaran/pangaea/abacus"
)

// WriteByGroupPretty renders the same by-group rows WriteByGroupTable
// writes as TSV, but as an aligned console table via tablewriter, for
// `--output-format pretty` (SPEC_FULL.md §4 "Pretty-printed console
// output").
func WriteByGroupPretty(w io.Writer, g *abacus.Group, label ItemLabeler, scale BPScale) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"id", "total"}, g.Groups...))

	for id := 1; id <= g.N; id++ {
		start, end := g.RowPtr[id], g.RowPtr[id+1]
		cells := make([]float64, len(g.Groups))
		for k := start; k < end; k++ {
			gi := g.ColGroup[k]
			if gi < 0 {
				continue
			}
			v := 1.0
			if g.Val != nil {
				v = g.Val[k]
			}
			cells[gi] = v
		}

		mult := 1.0
		if scale != nil {
			mult = float64(scale(id))
		}

		var total float64
		row := make([]string, 0, len(cells)+2)
		row = append(row, label(id))
		for _, c := range cells {
			total += c * mult
		}
		row = append(row, fmt.Sprintf("%g", total))
		for _, c := range cells {
			row = append(row, fmt.Sprintf("%g", c*mult))
		}
		table.Append(row)
	}

	table.Render()

	return nil
}
