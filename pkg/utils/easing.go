package utils

// Lerp linearly interpolates between a and b. t is clamped to [0, 1], so
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
