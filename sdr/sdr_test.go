package sdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDedupesAndSorts(t *testing.T) {
	s, err := New(10, []int{3, 1, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, s.ActiveBits)
	assert.Equal(t, 10, s.Width)
}

func TestNewRejectsOutOfRangeBit(t *testing.T) {
	_, err := New(10, []int{10})
	assert.Error(t, err)
}

func TestNewRejectsNonPositiveWidth(t *testing.T) {
	_, err := New(0, nil)
	assert.Error(t, err)
}

func TestOverlap(t *testing.T) {
	a, _ := New(10, []int{1, 2, 3, 4})
	b, _ := New(10, []int{3, 4, 5, 6})
	overlap, err := Overlap(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, overlap)
}

func TestOverlapRejectsWidthMismatch(t *testing.T) {
	a, _ := New(10, []int{1})
	b, _ := New(20, []int{1})
	_, err := Overlap(a, b)
	assert.Error(t, err)
}

func TestSimilarity(t *testing.T) {
	a, _ := New(10, []int{1, 2, 3, 4})
	b, _ := New(10, []int{3, 4, 5, 6})
	sim, err := Similarity(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sim, 1e-9)
}

func TestSimilarityOfEmptySDRsIsZero(t *testing.T) {
	a, _ := New(10, nil)
	b, _ := New(10, nil)
	sim, err := Similarity(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestFromBoolSlice(t *testing.T) {
	s := FromBoolSlice([]bool{true, false, true, false})
	assert.Equal(t, []int{0, 2}, s.ActiveBits)
	assert.Equal(t, 4, s.Width)
}

func TestSparsity(t *testing.T) {
	s, _ := New(20, []int{1, 2, 3, 4})
	assert.InDelta(t, 0.2, s.Sparsity(), 1e-9)
}
