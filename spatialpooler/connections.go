package spatialpooler

import (
	"log"
	"math/rand"

	"github.com/google/uuid"
)

// Connections is the spatial pooler's entire state: configuration plus
// everything learning mutates. It has no hidden globals — every operation
// in this package takes a *Connections explicitly and mutates only that
// value.
type Connections struct {
	inputDimensions  []int
	columnDimensions []int
	numInputs        int
	numColumns       int

	potentialRadius  int
	potentialPct     float64
	initConnectedPct float64

	globalInhibition           bool
	localAreaDensity           float64
	numActiveColumnsPerInhArea int
	stimulusThreshold          int

	synPermInactiveDec      float64
	synPermActiveInc        float64
	synPermBelowStimulusInc float64
	synPermTrimThreshold    float64
	synPermConnected        float64
	synPermMin              float64
	synPermMax              float64

	minPctOverlapDutyCycle float64
	minPctActiveDutyCycle  float64
	dutyCyclePeriod        int
	maxBoost               float64
	updatePeriod           int

	overlapDutyCycles    []float64
	activeDutyCycles     []float64
	minOverlapDutyCycles []float64
	minActiveDutyCycles  []float64
	boostFactors         []float64
	tieBreaker           []float64

	inhibitionRadius  int
	iterationNum      int
	iterationLearnNum int

	columns          []Column
	inputConnections *SparseBinaryMatrix

	seed     int64
	random   *rand.Rand
	parallel bool

	id     uuid.UUID
	logger *log.Logger
}

// ID returns the diagnostic identifier stamped on this Connections at
// construction. It plays no part in the algorithm; it exists only to
// correlate log lines across instances in test harnesses that run several
// spatial poolers side by side.
func (c *Connections) ID() uuid.UUID { return c.id }
