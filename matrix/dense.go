// Package matrix provides a compact row-major dense value matrix, used
// as the value backing for the similarity heatmap (spec.md §6 "Heatmap")
// chart descriptor. The node-distribution grid does not use it.
// Grounded on the teacher's matrix/dense.go shape (flat row-major
// storage, bounds-checked At/Set, Clone), trimmed to the single
// concrete type this domain needs instead of the full Matrix interface
// hierarchy (adjacency/incidence/floyd-warshall), which has no
// counterpart in coverage statistics.
package matrix

import "fmt"

// Dense is a row-major matrix of float64 values. r is rows, c is
// columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r x c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Permute returns a new Dense with rows and columns reordered according
// to order (order[i] is the original index placed at new position i),
// used by the similarity package to apply its clustering-derived
// reordering before rendering a heatmap.
func (m *Dense) Permute(order []int) (*Dense, error) {
	if len(order) != m.r || len(order) != m.c {
		return nil, ErrDimensionMismatch
	}

	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for i, oi := range order {
		for j, oj := range order {
			v, err := m.At(oi, oj)
			if err != nil {
				return nil, err
			}
			if err := out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
