package spatialpooler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInhibitColumnsGlobalTopK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDimensions = []int{10}
	cfg.ColumnDimensions = []int{10}
	cfg.GlobalInhibition = true
	cfg.NumActiveColumnsPerInhArea = 0
	cfg.LocalAreaDensity = 0.3
	cfg.Seed = 1
	c := newTestConnections(t, cfg)
	c.inhibitionRadius = 1

	overlaps := []float64{1, 1, 1, 2, 2, 2, 3, 4, 5, 5}
	winners := c.inhibitColumnsGlobal(overlaps, overlaps, 0.3)

	require.Len(t, winners, 3)
	assert.ElementsMatch(t, []int{7, 8, 9}, winners)
}

func TestInhibitColumnsGlobalBreaksTiesByIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDimensions = []int{4}
	cfg.ColumnDimensions = []int{4}
	cfg.Seed = 1
	c := newTestConnections(t, cfg)

	overlaps := []float64{5, 5, 5, 5}
	winners := c.inhibitColumnsGlobal(overlaps, overlaps, 0.5)

	require.Len(t, winners, 2)
	assert.Equal(t, []int{0, 1}, winners)
}

func TestInhibitColumnsLocalRespectsNeighborWindow(t *testing.T) {
	// Scenario 4: columnDim=[100], inhibitionRadius=4, localAreaDensity=0.5,
	// overlaps = index mod 7. Every neighbor-window of size 9 has <= 5
	// winners.
	cfg := DefaultConfig()
	cfg.InputDimensions = []int{100}
	cfg.ColumnDimensions = []int{100}
	cfg.GlobalInhibition = false
	cfg.NumActiveColumnsPerInhArea = 0
	cfg.LocalAreaDensity = 0.5
	cfg.Seed = 1
	c := newTestConnections(t, cfg)
	c.inhibitionRadius = 4

	overlaps := make([]float64, 100)
	for i := range overlaps {
		overlaps[i] = float64(i % 7)
	}

	winners := c.inhibitColumnsLocal(overlaps, overlaps, 0.5)
	winnerSet := make(map[int]bool, len(winners))
	for _, w := range winners {
		winnerSet[w] = true
	}

	for center := 4; center < 95; center++ {
		count := 0
		for d := -4; d <= 4; d++ {
			if winnerSet[center+d] {
				count++
			}
		}
		assert.LessOrEqual(t, count, 5, "window centered at %d has too many winners", center)
	}
}

func TestComputeDensityUsesLocalAreaDensityWhenSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LocalAreaDensity = 0.3
	cfg.NumActiveColumnsPerInhArea = 0
	c := newTestConnections(t, cfg)
	assert.Equal(t, 0.3, c.computeDensity())
}
