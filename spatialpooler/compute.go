package spatialpooler

import "fmt"

// Compute runs one step of the spatial pooling pipeline: overlap, boost,
// inhibit, and — when learn is set — adapt synapses, update duty cycles,
// bump weak columns, update boost factors, and (every updatePeriod
// iterations) refresh the inhibition radius and minimum duty cycles.
//
// Not safe for concurrent use on the same Connections: steps within a
// single call have read-after-write dependencies on each other.
func Compute(c *Connections, inputVector []bool, outActiveArray []bool, learn bool, stripUnlearned bool) error {
	if len(inputVector) != c.numInputs {
		return &InvalidArgumentError{
			Message: fmt.Sprintf("input vector length %d does not match numInputs %d", len(inputVector), c.numInputs),
		}
	}
	if len(outActiveArray) != c.numColumns {
		return &InvalidArgumentError{
			Message: fmt.Sprintf("output array length %d does not match numColumns %d", len(outActiveArray), c.numColumns),
		}
	}

	c.iterationNum++
	if learn {
		c.iterationLearnNum++
	}

	overlaps := c.calculateOverlap(inputVector)
	boosted := applyBoost(overlaps, c.boostFactors, learn)
	activeColumns := c.inhibitColumns(boosted)

	if learn {
		c.adaptSynapses(inputVector, activeColumns)
		c.updateDutyCycles(overlaps, activeColumns)
		c.bumpUpWeakColumns()
		c.updateBoostFactors()
		if c.isUpdateRound() {
			c.updateInhibitionRadius()
			c.updateMinDutyCycles()
		}
	} else if stripUnlearned {
		activeColumns = c.stripNeverLearned(activeColumns)
	}

	for i := range outActiveArray {
		outActiveArray[i] = false
	}
	for _, a := range activeColumns {
		outActiveArray[a] = true
	}

	if c.logger != nil && c.isUpdateRound() {
		c.logger.Printf("spatialpooler[%s]: iteration=%d active=%d radius=%d",
			c.id, c.iterationNum, len(activeColumns), c.inhibitionRadius)
	}
	return nil
}
