package biases

import (
	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// OPTIMISM BIAS
// =============================================================================
// Good outcomes are perceived as more likely than they are, bad outcomes less.

// optimismMultipliers maps each bias level to (good-outcome, bad-outcome)
// probability multipliers.
var optimismMultipliers = map[profile.OptimismLevel][2]float64{
	profile.OptimismLow:      {1.05, 0.95},
	profile.OptimismModerate: {1.15, 0.85},
	profile.OptimismHigh:     {1.30, 0.70},
}

// InsuranceDecision contrasts rational and optimism-biased insurance purchase.
type InsuranceDecision struct {
	TrueExpectedLoss      float64 `json:"true_expected_loss"`
	PerceivedExpectedLoss float64 `json:"perceived_expected_loss"`
	RationalPurchase      bool    `json:"rational_purchase"`
	BiasedPurchase        bool    `json:"biased_purchase"`
	Underinsured          bool    `json:"underinsured"`
}

// OptimismBiasCorrector adjusts probability estimates for optimism bias.
// Stateless; safe for concurrent use.
type OptimismBiasCorrector struct {
	Level profile.OptimismLevel
}

// NewOptimismBiasCorrector creates a corrector at the given bias level.
func NewOptimismBiasCorrector(level profile.OptimismLevel) *OptimismBiasCorrector {
	return &OptimismBiasCorrector{Level: level}
}

// AdjustProbabilityEstimate returns the perceived probability of an outcome
// given its true probability, clamped to [0, 1]. Good outcomes are inflated,
// bad outcomes deflated.
func (c *OptimismBiasCorrector) AdjustProbabilityEstimate(trueProb float64, goodOutcome bool) float64 {
	mults, ok := optimismMultipliers[c.Level]
	if !ok {
		mults = optimismMultipliers[profile.OptimismModerate]
	}

	var perceived float64
	if goodOutcome {
		perceived = trueProb * mults[0]
	} else {
		perceived = trueProb * mults[1]
	}
	return formulas.Clamp01(perceived)
}

// InsurancePurchaseDecision compares expected loss against the premium under
// true and optimism-biased risk perception. Underinsured flags the case where
// insurance is rationally worth buying but the biased actor skips it.
func (c *OptimismBiasCorrector) InsurancePurchaseDecision(
	annualLossProb float64,
	lossAmount float64,
	annualPremium float64,
) InsuranceDecision {
	trueEL := annualLossProb * lossAmount
	perceivedProb := c.AdjustProbabilityEstimate(annualLossProb, false)
	perceivedEL := perceivedProb * lossAmount

	rational := trueEL > annualPremium
	biased := perceivedEL > annualPremium

	return InsuranceDecision{
		TrueExpectedLoss:      trueEL,
		PerceivedExpectedLoss: perceivedEL,
		RationalPurchase:      rational,
		BiasedPurchase:        biased,
		Underinsured:          rational && !biased,
	}
}
