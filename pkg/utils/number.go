package utils

import "math"

// RoundHalfUp arredonda como Math.round: meios sempre para +Inf
func RoundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// Finite troca NaN e infinitos por zero
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
