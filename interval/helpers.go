package interval

import "math"

const pi64 = math.Pi

func nan64() float64      { return math.NaN() }
func mathAcos(x float64) float64 {
	if x < -1 {
		x = -1
	}
	if x > 1 {
		x = 1
	}
	return math.Acos(x)
}
func mathAsin(x float64) float64 {
	if x < -1 {
		x = -1
	}
	if x > 1 {
		x = 1
	}
	return math.Asin(x)
}
