// Package emergency models behaviorally-realistic responses to financial
// emergencies: stress-dependent decision quality, expense-reduction timelines,
// external help seeking, and a month-by-month emergency simulation.
package emergency

import (
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// STRESS RESPONSE CURVE (Yerkes-Dodson)
// =============================================================================
// Mild stress sharpens decision-making, sustained stress degrades it, and
// stress past the breakdown threshold collapses it (panic).

const (
	// DefaultOptimalStress is the stress level at which decision quality peaks.
	DefaultOptimalStress = 0.3

	// DefaultBreakdownThreshold is the stress level past which quality collapses.
	DefaultBreakdownThreshold = 0.8

	// Quality anchors for the three curve segments
	qualityAtZeroStress = 0.85
	qualityAtBreakdown  = 0.60
	panicSlope          = 2.0
	maxPanicExcess      = 0.2
)

// StressResponseCurve maps a 0-1 stress score to a decision-quality multiplier.
type StressResponseCurve struct {
	OptimalStress      float64
	BreakdownThreshold float64
}

// NewStressResponseCurve returns a curve with the default Yerkes-Dodson anchors.
func NewStressResponseCurve() *StressResponseCurve {
	return &StressResponseCurve{
		OptimalStress:      DefaultOptimalStress,
		BreakdownThreshold: DefaultBreakdownThreshold,
	}
}

// DecisionQuality returns the decision-quality multiplier for a stress level.
//
// Three segments:
//   - [0, optimal]: quality rises linearly 0.85 -> 1.0 (mild stress improves focus)
//   - (optimal, breakdown]: quality falls linearly 1.0 -> 0.6
//   - (breakdown, 1]: quality falls steeply (0.6 - 2*excess, excess capped at 0.2)
//
// The result is clamped to [0, 1]; with the default anchors the panic segment
// bottoms out at 0.2 before clamping, so the clamp only matters for non-default
// curve constants.
func (c *StressResponseCurve) DecisionQuality(stress float64) float64 {
	stress = formulas.Clamp01(stress)

	var quality float64
	switch {
	case stress <= c.OptimalStress:
		// Rising segment
		quality = formulas.Lerp(qualityAtZeroStress, 1.0, stress/c.OptimalStress)
	case stress <= c.BreakdownThreshold:
		// Falling segment
		frac := (stress - c.OptimalStress) / (c.BreakdownThreshold - c.OptimalStress)
		quality = formulas.Lerp(1.0, qualityAtBreakdown, frac)
	default:
		// Panic segment
		excess := stress - c.BreakdownThreshold
		if excess > maxPanicExcess {
			excess = maxPanicExcess
		}
		quality = qualityAtBreakdown - panicSlope*excess
	}

	return formulas.Clamp01(quality)
}
