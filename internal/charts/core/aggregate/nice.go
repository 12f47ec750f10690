package aggregate

import "math"

// NiceCeil rounds v up to the nearest value in the {1,2,5,10}×10^k step
// sequence so chart axes get clean maxima. Non-positive input maps to 1.
func NiceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	p := math.Pow(10, math.Floor(math.Log10(v)))
	n := v / p

	var step float64
	switch {
	case n <= 1:
		step = 1
	case n <= 2:
		step = 2
	case n <= 5:
		step = 5
	default:
		step = 10
	}
	return step * p
}
