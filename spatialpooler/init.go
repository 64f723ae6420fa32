package spatialpooler

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
)

// Init runs the initialization pipeline: allocate state, connect every
// column to its potential pool, seed its permanences, and derive the
// starting inhibition radius. Idempotent as long as it is called before the
// first Compute.
func Init(c *Connections) error {
	c.initMatrices()
	c.connectAndConfigureInputs()
	return nil
}

func (c *Connections) initMatrices() {
	c.columns = make([]Column, c.numColumns)
	for i := range c.columns {
		c.columns[i].Index = i
	}
	c.inputConnections = NewSparseBinaryMatrix(c.numColumns, c.numInputs)

	c.overlapDutyCycles = make([]float64, c.numColumns)
	c.activeDutyCycles = make([]float64, c.numColumns)
	c.minOverlapDutyCycles = make([]float64, c.numColumns)
	c.minActiveDutyCycles = make([]float64, c.numColumns)
	c.boostFactors = make([]float64, c.numColumns)
	c.tieBreaker = make([]float64, c.numColumns)
	// Reseeded from the master seed so that a repeated Init draws the same
	// tie-breakers.
	c.random = rand.New(rand.NewSource(c.seed))
	for i := 0; i < c.numColumns; i++ {
		c.boostFactors[i] = 1.0
		c.tieBreaker[i] = 0.01 * c.random.Float64()
	}
}

// connectAndConfigureInputs maps every column's potential pool, seeds its
// permanences, and raises each to the stimulus threshold. Every column
// draws from its own sub-seeded PRNG (masterSeed XOR columnIndex) rather
// than a single shared stream, so that running this sequentially or over
// the Parallel worker pool produces bit-for-bit identical results — the
// redesign spec.md's design notes call for, replacing the original's
// order-dependent shared-stream draws.
func (c *Connections) connectAndConfigureInputs() {
	if c.parallel {
		var wg sync.WaitGroup
		sem := make(chan struct{}, runtime.NumCPU())
		for i := 0; i < c.numColumns; i++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				c.connectColumn(i, c.subRand(i))
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < c.numColumns; i++ {
			c.connectColumn(i, c.subRand(i))
		}
	}
	c.updateInhibitionRadius()
}

func (c *Connections) subRand(columnIndex int) *rand.Rand {
	return rand.New(rand.NewSource(c.seed ^ int64(columnIndex)))
}

func (c *Connections) connectColumn(i int, rng *rand.Rand) {
	potential := c.mapPotential(i, true, rng)
	col := &c.columns[i]
	col.PotentialPool = potential
	col.Permanences = make([]float64, len(potential))

	dense := c.initPermanence(potential, c.initConnectedPct, rng)
	c.updatePermanencesForColumn(col, dense, true)
}

// mapColumn computes the input-space center a column maps to: ratio-scale
// the column's coordinate by inputDim/columnDim, add the half-step offset,
// clip to range, reconvert to a flat index.
func (c *Connections) mapColumn(columnIndex int) int {
	columnCoords := computeCoordinates(columnIndex, c.columnDimensions)
	inputCoords := make([]int, len(c.inputDimensions))
	for d := range c.inputDimensions {
		ratio := float64(c.inputDimensions[d]) / float64(c.columnDimensions[d])
		coord := int(float64(columnCoords[d])*ratio + ratio/2.0)
		if coord >= c.inputDimensions[d] {
			coord = c.inputDimensions[d] - 1
		}
		if coord < 0 {
			coord = 0
		}
		inputCoords[d] = coord
	}
	return computeIndex(inputCoords, c.inputDimensions)
}

// mapPotential samples a column's potential pool: the neighborhood of its
// mapped center plus the center itself, sized to potentialPct of the
// candidate set and sampled without replacement.
func (c *Connections) mapPotential(columnIndex int, wrap bool, rng *rand.Rand) []int {
	center := c.mapColumn(columnIndex)
	neighbors := neighborsND(center, c.inputDimensions, c.potentialRadius, wrap)

	candidateSet := make(map[int]bool, len(neighbors)+1)
	for _, n := range neighbors {
		candidateSet[n] = true
	}
	candidateSet[center] = true

	candidates := make([]int, 0, len(candidateSet))
	for idx := range candidateSet {
		candidates = append(candidates, idx)
	}
	sort.Ints(candidates)

	k := roundAwayFromZero(float64(len(candidates)) * c.potentialPct)
	return sampleWithoutReplacement(candidates, k, rng)
}

func sampleWithoutReplacement(items []int, k int, rng *rand.Rand) []int {
	if k >= len(items) {
		out := append([]int(nil), items...)
		sort.Ints(out)
		return out
	}
	if k <= 0 {
		return nil
	}
	perm := rng.Perm(len(items))
	chosen := make([]int, k)
	for i := 0; i < k; i++ {
		chosen[i] = items[perm[i]]
	}
	sort.Ints(chosen)
	return chosen
}

// initPermanence seeds a dense, numInputs-length permanence buffer for the
// given potential pool. connectedPct of the pool is marked "initially
// connected" and given a permanence at or above synPermConnected; the rest
// get a permanence drawn below it. Every value is truncated to five
// decimals before the trim-threshold check, for cross-platform
// reproducibility of the connected-bit mask.
func (c *Connections) initPermanence(pool []int, connectedPct float64, rng *rand.Rand) []float64 {
	dense := make([]float64, c.numInputs)

	k := roundAwayFromZero(float64(len(pool)) * connectedPct)
	connectedSet := make(map[int]bool, k)
	perm := rng.Perm(len(pool))
	for i := 0; i < k && i < len(pool); i++ {
		connectedSet[pool[perm[i]]] = true
	}

	for _, idx := range pool {
		var p float64
		if connectedSet[idx] {
			p = c.synPermConnected + rng.Float64()*c.synPermActiveInc/4.0
		} else {
			p = c.synPermConnected * rng.Float64()
		}
		p = math.Floor(p*1e5) / 1e5
		if p <= c.synPermTrimThreshold {
			p = 0
		}
		dense[idx] = p
	}
	return dense
}
