package spatialpooler

// applyBoost scales each column's overlap by its boost factor when
// learning; outside learning, overlaps pass through unscaled as doubles.
func applyBoost(overlaps []int, boostFactors []float64, learn bool) []float64 {
	boosted := make([]float64, len(overlaps))
	for i := range overlaps {
		if learn {
			boosted[i] = float64(overlaps[i]) * boostFactors[i]
		} else {
			boosted[i] = float64(overlaps[i])
		}
	}
	return boosted
}
