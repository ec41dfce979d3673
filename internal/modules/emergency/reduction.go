package emergency

import (
	"math"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// EXPENSE REDUCTION PATTERN
// =============================================================================

// Personality multipliers for reduction aggressiveness.
var reductionPersonalityMultiplier = map[profile.Personality]float64{
	profile.PersonalityPlanner:   1.2,
	profile.PersonalityAvoider:   0.6,
	profile.PersonalitySurvivor:  1.1,
	profile.PersonalityPanicker:  0.8,
	profile.PersonalityOptimizer: 1.3,
}

const (
	// DefaultInitialStress is the stress assumed at crisis onset when the
	// caller has no better estimate.
	DefaultInitialStress = 0.3

	// Stress grows with every month spent in crisis.
	stressGrowthPerMonth = 0.05

	// Sigmoid steepness scale: the adoption curve reaches ~98% of its final
	// value at t = implementation speed.
	sigmoidSteepnessScale = 8.0
)

// ReductionPattern produces per-category expense reductions for a crisis of a
// given duration.
type ReductionPattern struct{}

// NewReductionPattern creates a reduction pattern calculator.
func NewReductionPattern() *ReductionPattern {
	return &ReductionPattern{}
}

// ReductionTimeline returns the reduction fraction achieved per category after
// monthsInCrisis months, for the given personality and initial stress.
//
// Each category follows a sigmoid adoption curve centered at half its
// implementation speed; reduction is fully realized once monthsInCrisis reaches
// the implementation speed. The curve is scaled by the category's reduction
// potential, a personality multiplier, and a stress adjustment
// min(1, initialStress + months*0.05).
func (rp *ReductionPattern) ReductionTimeline(
	monthsInCrisis float64,
	personality profile.Personality,
	initialStress float64,
) map[Category]float64 {
	personalityMult, ok := reductionPersonalityMultiplier[personality]
	if !ok {
		personalityMult = 1.0
	}

	stressAdjustment := math.Min(1.0, initialStress+monthsInCrisis*stressGrowthPerMonth)

	reductions := make(map[Category]float64, len(AllCategories))
	for _, cat := range AllCategories {
		speed := ImplementationSpeed[cat]

		var progress float64
		if monthsInCrisis >= speed {
			progress = 1.0
		} else {
			progress = formulas.SigmoidProgress(monthsInCrisis, speed/2.0, sigmoidSteepnessScale/speed)
		}

		reductions[cat] = progress * ReductionPotential[cat] * personalityMult * stressAdjustment
	}

	return reductions
}
