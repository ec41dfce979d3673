package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SigmoidProgress calculates logistic adoption progress at time t for a behavior
// whose implementation is centered at midpoint.
//
// Args:
//   - t: Elapsed time (months)
//   - midpoint: Time at which progress reaches 50%
//   - steepness: Slope of the transition (higher = sharper adoption)
//
// Returns:
//   - Progress fraction in (0, 1)
func SigmoidProgress(t, midpoint, steepness float64) float64 {
	return 1.0 / (1.0 + math.Exp(-steepness*(t-midpoint)))
}

// Clamp limits x to the [lo, hi] interval.
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Clamp01 limits x to the [0, 1] interval.
func Clamp01(x float64) float64 {
	return Clamp(x, 0.0, 1.0)
}

// Lerp linearly interpolates between a and b by fraction t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	return stat.Mean(xs, nil)
}

// Max returns the maximum of xs, or 0 for an empty slice.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// FractionWhere returns the fraction of elements for which pred is true,
// or 0 for an empty slice.
func FractionWhere(xs []float64, pred func(float64) bool) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	count := 0
	for _, x := range xs {
		if pred(x) {
			count++
		}
	}
	return float64(count) / float64(len(xs))
}
