package ricci

import "math"

// Tolerances of ApproxEqual.
const (
	GaussBonnetAbsTol = 1e-9
	GaussBonnetRelTol = 1e-9
)

// ApproxEqual reports whether |a−b| ≤ AbsTol + RelTol·max(|a|,|b|).
// NaN is never equal to anything.
func ApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= GaussBonnetAbsTol+GaussBonnetRelTol*scale
}
