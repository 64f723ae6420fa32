package spatialpooler

// NumColumns returns the total number of columns (product of
// ColumnDimensions).
func (c *Connections) NumColumns() int { return c.numColumns }

// NumInputs returns the total number of input bits (product of
// InputDimensions).
func (c *Connections) NumInputs() int { return c.numInputs }

// InhibitionRadius returns the current inhibition radius.
func (c *Connections) InhibitionRadius() int { return c.inhibitionRadius }

// IterationNum returns the number of Compute calls so far, learning or not.
func (c *Connections) IterationNum() int { return c.iterationNum }

// IterationLearnNum returns the number of Compute calls made with
// learn=true so far.
func (c *Connections) IterationLearnNum() int { return c.iterationLearnNum }

// ColumnConnectedIndices returns the sorted input indices a column is
// currently connected to.
func (c *Connections) ColumnConnectedIndices(columnIdx int) []int {
	col := &c.columns[columnIdx]
	out := make([]int, 0, col.ConnectedCount)
	for i, idx := range col.PotentialPool {
		if col.Permanences[i] >= c.synPermConnected {
			out = append(out, idx)
		}
	}
	return out
}

// ColumnPermanences returns a copy of a column's dense-in-pool permanence
// values, in the same order as its potential pool.
func (c *Connections) ColumnPermanences(columnIdx int) []float64 {
	col := &c.columns[columnIdx]
	out := make([]float64, len(col.Permanences))
	copy(out, col.Permanences)
	return out
}

// ColumnPotentialPool returns a copy of a column's potential pool input
// indices.
func (c *Connections) ColumnPotentialPool(columnIdx int) []int {
	col := &c.columns[columnIdx]
	out := make([]int, len(col.PotentialPool))
	copy(out, col.PotentialPool)
	return out
}
