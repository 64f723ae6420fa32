package spatialpooler

import "math"

// updatePermanencesForColumn is the dense-input variant: optionally raises
// every permanence to the stimulus threshold (bug-parity: the raise step
// touches the whole dense buffer, not just this column's potential pool),
// trims entries at or below synPermTrimThreshold to zero, clips to
// [synPermMin, synPermMax], then stores only the pool entries back into the
// column and refreshes its connected-bit mask.
func (c *Connections) updatePermanencesForColumn(col *Column, dense []float64, raise bool) {
	if raise {
		c.raisePermanenceToThreshold(dense, col.PotentialPool)
	}
	for i, idx := range col.PotentialPool {
		v := dense[idx]
		if v <= c.synPermTrimThreshold {
			v = 0
		}
		col.Permanences[i] = clip(v, c.synPermMin, c.synPermMax)
	}
	c.refreshConnected(col)
}

// raisePermanenceToThreshold repeatedly adds synPermBelowStimulusInc to
// every entry of dense — not only those in maskPotential — until at least
// stimulusThreshold of maskPotential's entries are connected. Reproducing
// this "raise everything" behavior, rather than silently restricting it to
// the potential pool, preserves reproducibility with the algorithm this was
// ported from.
func (c *Connections) raisePermanenceToThreshold(dense []float64, maskPotential []int) {
	for c.connectedCountInMask(dense, maskPotential) < c.stimulusThreshold {
		for j := range dense {
			dense[j] += c.synPermBelowStimulusInc
		}
	}
}

func (c *Connections) connectedCountInMask(dense []float64, maskPotential []int) int {
	count := 0
	for _, idx := range maskPotential {
		if dense[idx] >= c.synPermConnected {
			count++
		}
	}
	return count
}

func (c *Connections) refreshConnected(col *Column) {
	connected := make([]int, 0, len(col.PotentialPool))
	for i, idx := range col.PotentialPool {
		if math.IsNaN(col.Permanences[i]) {
			panicProgrammer("column %d: NaN permanence for input %d", col.Index, idx)
		}
		if col.Permanences[i] >= c.synPermConnected {
			connected = append(connected, idx)
		}
	}
	col.ConnectedCount = len(connected)
	c.inputConnections.SetRow(col.Index, connected)
}

// adaptSynapses applies Hebbian-style reinforcement to every active
// column's pool: active-column synapses whose input bit is 1 get
// +synPermActiveInc, every other synapse gets -synPermInactiveDec, then the
// column is re-raised to threshold.
func (c *Connections) adaptSynapses(inputVector []bool, activeColumns []int) {
	permChanges := make([]float64, c.numInputs)
	for j := range permChanges {
		permChanges[j] = -c.synPermInactiveDec
	}
	for j, on := range inputVector {
		if on {
			permChanges[j] = c.synPermActiveInc
		}
	}

	for _, a := range activeColumns {
		col := &c.columns[a]
		dense := make([]float64, c.numInputs)
		for i, idx := range col.PotentialPool {
			dense[idx] = col.Permanences[i]
		}
		for j := range dense {
			dense[j] += permChanges[j]
		}
		c.updatePermanencesForColumn(col, dense, true)
	}
}

// bumpUpWeakColumns raises every permanence of a column whose overlap duty
// cycle has fallen below its minimum, then re-normalizes via the sparse
// (pool-only) trim/clip rules — no raise-to-threshold bug to reproduce
// here since this step never calls raisePermanenceToThreshold.
func (c *Connections) bumpUpWeakColumns() {
	for i := range c.columns {
		if c.overlapDutyCycles[i] < c.minOverlapDutyCycles[i] {
			col := &c.columns[i]
			for j := range col.Permanences {
				col.Permanences[j] += c.synPermBelowStimulusInc
			}
			c.trimAndClipColumn(col)
		}
	}
}

func (c *Connections) trimAndClipColumn(col *Column) {
	for i, v := range col.Permanences {
		if v <= c.synPermTrimThreshold {
			v = 0
		}
		col.Permanences[i] = clip(v, c.synPermMin, c.synPermMax)
	}
	c.refreshConnected(col)
}
