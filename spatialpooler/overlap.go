package spatialpooler

// calculateOverlap returns, per column, the count of connected synapses
// whose input bit is 1, with any column below stimulusThreshold zeroed.
func (c *Connections) calculateOverlap(inputVector []bool) []int {
	dense := make([]float64, len(inputVector))
	for i, b := range inputVector {
		if b {
			dense[i] = 1
		}
	}
	overlaps := c.inputConnections.OverlapByRow(dense)
	for i := range overlaps {
		if overlaps[i] < c.stimulusThreshold {
			overlaps[i] = 0
		}
	}
	return overlaps
}

// calculateOverlapPct normalizes raw overlaps by each column's connected
// synapse count.
func calculateOverlapPct(overlaps []int, connectedCounts []int) []float64 {
	pct := make([]float64, len(overlaps))
	for i := range overlaps {
		if connectedCounts[i] > 0 {
			pct[i] = float64(overlaps[i]) / float64(connectedCounts[i])
		}
	}
	return pct
}
