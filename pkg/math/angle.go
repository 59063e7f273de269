package math

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Epsilon is the tolerance used by the geometry code for degenerate cases.
const Epsilon = 1e-9

// WrapAngle maps angle into [0, 2π).
func WrapAngle(angle float64) float64 {
	a := math.Mod(angle, Tau)
	if a < 0 {
		a += Tau
	}
	// math.Mod of a tiny negative value can round back up to Tau.
	if a >= Tau {
		a = 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NearlyEqual reports whether a and b differ by at most eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
