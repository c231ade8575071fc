package tsv

import (
	"fmt"
	"io"
	"strings"

	"github.com/vlaran/pangaea/abacus"
	"github.com/vlaran/pangaea/graphstore"
)

// ItemLabeler formats a countable's row-1 identifier: a segment name
// for node/bp kinds, or the `<ori1><name1><ori2><name2>` form for
// edges (spec.md §6 "By-group coverage table").
type ItemLabeler func(id int) string

// SegmentLabeler builds an ItemLabeler for node/bp-kind tables.
func SegmentLabeler(gs *graphstore.GraphStore) ItemLabeler {
	return func(id int) string { return gs.SegmentName(graphstore.SegmentId(id)) }
}

// EdgeLabeler builds an ItemLabeler for edge-kind tables.
func EdgeLabeler(gs *graphstore.GraphStore) ItemLabeler {
	return func(id int) string {
		k := gs.EdgeKeyByID(graphstore.EdgeId(id))
		return fmt.Sprintf("%s%s%s%s", k.OU, gs.SegmentName(k.U), k.OV, gs.SegmentName(k.V))
	}
}

// BPScale, when non-nil, multiplies every per-group cell by a
// countable's covered length (spec.md §6 "bp scaling multiplies by
// covered length").
type BPScale func(id int) int

// WriteByGroupTable writes g's CSR matrix as a wide TSV: one row per
// countable, a "total" column summing across groups, then one column
// per group (0/1 presence, or a value if g.Val is populated).
func WriteByGroupTable(w io.Writer, g *abacus.Group, label ItemLabeler, scale BPScale) error {
	header := append([]string{"id", "total"}, g.Groups...)
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}

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
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return nil
}
