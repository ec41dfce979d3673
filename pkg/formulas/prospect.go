package formulas

import "math"

// ProspectAlpha is the curvature exponent of the Kahneman-Tversky value function.
// The 0.88 estimate comes from the original prospect theory calibration.
const ProspectAlpha = 0.88

// DefaultLossAversion is the default loss-aversion coefficient (lambda).
// Empirical estimates cluster around 2.0-2.5; 2.1 is used as the engine default.
const DefaultLossAversion = 2.1

// ProspectValue calculates the prospect-theory subjective value of an outcome
// relative to a reference point.
//
// Gains are valued as (x - reference)^alpha, losses as -lambda * (reference - x)^alpha.
// Losses loom larger than gains because lambda > 1.
//
// Args:
//   - x: The outcome being evaluated
//   - reference: The reference point (status quo)
//   - lambda: Loss-aversion coefficient (> 1)
//   - alpha: Diminishing-sensitivity exponent (0 < alpha <= 1)
//
// Returns:
//   - Subjective value (negative for losses)
func ProspectValue(x, reference, lambda, alpha float64) float64 {
	if x >= reference {
		return math.Pow(x-reference, alpha)
	}
	return -lambda * math.Pow(reference-x, alpha)
}
