package spatialpooler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseBinaryMatrixOverlapByRow(t *testing.T) {
	m := NewSparseBinaryMatrix(3, 5)
	m.SetRow(0, []int{0, 1, 2})
	m.SetRow(1, []int{2, 3, 4})
	m.SetRow(2, []int{})

	input := []float64{1, 1, 0, 0, 1}
	overlaps := m.OverlapByRow(input)

	assert.Equal(t, []int{2, 1, 0}, overlaps)
	assert.Equal(t, 3, m.ConnectedCount(0))
	assert.Equal(t, 0, m.ConnectedCount(2))
}

func TestSparseBinaryMatrixSetRowReplacesPreviousBits(t *testing.T) {
	m := NewSparseBinaryMatrix(1, 4)
	m.SetRow(0, []int{0, 1, 2, 3})
	m.SetRow(0, []int{1})

	overlaps := m.OverlapByRow([]float64{1, 1, 1, 1})
	assert.Equal(t, []int{1}, overlaps)
	assert.Equal(t, 1, m.ConnectedCount(0))
}
