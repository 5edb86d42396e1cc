package stats

import "math"

// Round2 rounds to 2 decimals. All rates and percentages in the engine are
// reported at this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal. Used for annual year-coverage only.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
