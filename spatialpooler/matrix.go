package spatialpooler

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SparseBinaryMatrix is the connected-synapse bit mask: one row per column,
// one column per input. Rows are dense 0/1 backed by gonum so OverlapByRow
// can be expressed as a single matrix-vector multiply, the same shape the
// teacher's pooler used for its permanence/connected-synapse matrices.
type SparseBinaryMatrix struct {
	dense           *mat.Dense
	rows, cols      int
	connectedCounts []int
}

func NewSparseBinaryMatrix(rows, cols int) *SparseBinaryMatrix {
	return &SparseBinaryMatrix{
		dense:           mat.NewDense(rows, cols, nil),
		rows:            rows,
		cols:            cols,
		connectedCounts: make([]int, rows),
	}
}

// SetRow replaces row's connected bits with exactly the given input
// indices.
func (m *SparseBinaryMatrix) SetRow(row int, indices []int) {
	rowView := m.dense.RawRowView(row)
	for i := range rowView {
		rowView[i] = 0
	}
	for _, idx := range indices {
		rowView[idx] = 1
	}
	m.connectedCounts[row] = len(indices)
}

func (m *SparseBinaryMatrix) ConnectedCount(row int) int {
	return m.connectedCounts[row]
}

// OverlapByRow computes, for every row, the dot product of that row's
// connected-bit mask with input — the raw per-column overlap count.
func (m *SparseBinaryMatrix) OverlapByRow(input []float64) []int {
	inVec := mat.NewVecDense(m.cols, input)
	var out mat.VecDense
	out.MulVec(m.dense, inVec)
	result := make([]int, m.rows)
	for r := 0; r < m.rows; r++ {
		result[r] = int(math.Round(out.AtVec(r)))
	}
	return result
}
