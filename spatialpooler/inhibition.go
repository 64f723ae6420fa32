package spatialpooler

import (
	"math"
	"sort"
)

// inhibitColumns picks the winning columns from boosted overlaps: it works
// on a copy, adds the per-column tie-breaker to force a deterministic
// ordering among exact ties, then dispatches to the global or local
// selection strategy. A column whose raw boosted overlap is 0 never wins,
// however favorably its tie-breaker compares — a column with nothing
// overlapping represents nothing, so an all-zero input always yields an
// all-zero output regardless of density or tie-breaking.
func (c *Connections) inhibitColumns(boosted []float64) []int {
	overlaps := append([]float64(nil), boosted...)
	for i := range overlaps {
		overlaps[i] += c.tieBreaker[i]
	}

	density := c.computeDensity()
	if c.globalInhibition || c.inhibitionRadius > maxInt(c.columnDimensions) {
		return c.inhibitColumnsGlobal(boosted, overlaps, density)
	}
	return c.inhibitColumnsLocal(boosted, overlaps, density)
}

func (c *Connections) computeDensity() float64 {
	if c.localAreaDensity > 0 {
		return c.localAreaDensity
	}
	area := math.Min(
		float64(c.numColumns),
		math.Pow(float64(2*c.inhibitionRadius+1), float64(len(c.columnDimensions))),
	)
	return math.Min(0.5, float64(c.numActiveColumnsPerInhArea)/area)
}

// inhibitColumnsGlobal returns the top floor(density*numColumns) columns by
// overlap (skipping any column with a non-positive raw overlap), ties
// broken by ascending column index, result sorted ascending.
func (c *Connections) inhibitColumnsGlobal(raw, overlaps []float64, density float64) []int {
	numWinners := int(math.Floor(density * float64(c.numColumns)))
	if numWinners > c.numColumns {
		numWinners = c.numColumns
	}

	type scored struct {
		idx int
		val float64
	}
	items := make([]scored, c.numColumns)
	for i := range overlaps {
		items[i] = scored{i, overlaps[i]}
	}
	sort.Slice(items, func(a, b int) bool {
		if items[a].val != items[b].val {
			return items[a].val > items[b].val
		}
		return items[a].idx < items[b].idx
	})

	var winners []int
	for i := 0; i < len(items) && len(winners) < numWinners; i++ {
		if raw[items[i].idx] <= 0 {
			continue
		}
		winners = append(winners, items[i].idx)
	}
	sort.Ints(winners)
	return winners
}

// inhibitColumnsLocal evaluates columns in ascending index order; a column
// wins iff it has positive raw overlap and fewer than k of its neighbors
// strictly exceed its overlap. A tiny boost is nudged into a winner's
// working overlap as it is found, so later comparisons see it as slightly
// stronger — this makes the result order-dependent by design, per the
// ascending traversal requirement.
func (c *Connections) inhibitColumnsLocal(raw, overlaps []float64, density float64) []int {
	work := append([]float64(nil), overlaps...)
	boostBump := maxFloat(overlaps) / 1000.0

	var winners []int
	for i := 0; i < c.numColumns; i++ {
		if raw[i] <= 0 {
			continue
		}
		neighbors := neighborsND(i, c.columnDimensions, c.inhibitionRadius, false)
		k := roundAwayFromZero(density * float64(len(neighbors)+1))

		numBigger := 0
		for _, n := range neighbors {
			if work[n] > work[i] {
				numBigger++
			}
		}
		if numBigger < k {
			winners = append(winners, i)
			work[i] += boostBump
		}
	}
	sort.Ints(winners)
	return winners
}
