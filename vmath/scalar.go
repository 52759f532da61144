package vmath

import "math"

// Lerp interpolates a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpAngle interpolates angle a toward b along the shorter arc
// Result is reduced modulo 2π keeping the sign of the interpolated value
func LerpAngle(a, b, k float64) float64 {
	if a-b > math.Pi {
		b += 2 * math.Pi
	}
	if b-a > math.Pi {
		a += 2 * math.Pi
	}
	return math.Mod(Lerp(a, b, k), 2*math.Pi)
}

// ApproxEqual compares with absolute tolerance
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
