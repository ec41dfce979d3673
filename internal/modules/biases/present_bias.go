package biases

import (
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// PRESENT BIAS (quasi-hyperbolic discounting)
// =============================================================================

// SavingsDecision contrasts the rational and present-biased savings choice.
type SavingsDecision struct {
	RationalFutureValue  float64 `json:"rational_future_value"`
	PerceivedFutureValue float64 `json:"perceived_future_value"`
	RationalChoice       string  `json:"rational_choice"`  // "save" or "spend"
	BiasedChoice         string  `json:"biased_choice"`    // "save" or "spend"
	OptimalSavingsRate   float64 `json:"optimal_savings_rate"`
	ActualSavingsRate    float64 `json:"actual_savings_rate"`
	SavingsGap           float64 `json:"savings_gap"`
}

// Retirement age assumed for contribution adjustments.
const retirementAge = 65.0

// PresentBiasAdjuster applies beta-delta discounting to savings decisions.
// Stateless; safe for concurrent use.
type PresentBiasAdjuster struct {
	Beta  float64 // Present-bias factor
	Delta float64 // Per-month exponential discount
}

// NewPresentBiasAdjuster creates an adjuster with the given beta and the
// default monthly delta.
func NewPresentBiasAdjuster(beta float64) *PresentBiasAdjuster {
	if beta <= 0 || beta > 1 {
		beta = formulas.DefaultPresentBiasBeta
	}
	return &PresentBiasAdjuster{Beta: beta, Delta: formulas.DefaultMonthlyDelta}
}

// DiscountedValue returns the present-biased present value of a future amount.
func (a *PresentBiasAdjuster) DiscountedValue(amount, months float64) float64 {
	return formulas.QuasiHyperbolicDiscount(amount, months, a.Beta, a.Delta)
}

// AdjustSavingsDecision compares an immediate want against a discounted future
// need and computes the actual-vs-optimal savings rate.
//
// The rational actor discounts the future need exponentially; the biased actor
// applies the extra beta factor, which shrinks the future need and pulls the
// choice toward spending. The actual savings rate is optimal * beta.
func (a *PresentBiasAdjuster) AdjustSavingsDecision(
	immediateWant float64,
	futureNeed float64,
	monthsAhead float64,
	optimalSavingsRate float64,
) SavingsDecision {
	rationalValue := formulas.ExponentialDiscount(futureNeed, monthsAhead, a.Delta)
	perceivedValue := a.DiscountedValue(futureNeed, monthsAhead)

	rationalChoice := "save"
	if immediateWant > rationalValue {
		rationalChoice = "spend"
	}
	biasedChoice := "save"
	if immediateWant > perceivedValue {
		biasedChoice = "spend"
	}

	actualRate := optimalSavingsRate * a.Beta

	return SavingsDecision{
		RationalFutureValue:  rationalValue,
		PerceivedFutureValue: perceivedValue,
		RationalChoice:       rationalChoice,
		BiasedChoice:         biasedChoice,
		OptimalSavingsRate:   optimalSavingsRate,
		ActualSavingsRate:    actualRate,
		SavingsGap:           optimalSavingsRate - actualRate,
	}
}

// RetirementContributionAdjustment scales a suggested contribution rate by an
// age-dependent bias factor: far from retirement the future is heavily
// devalued, while the final years trigger panic saving above the suggestion.
func (a *PresentBiasAdjuster) RetirementContributionAdjustment(suggestedRate, age float64) float64 {
	yearsLeft := retirementAge - age

	var factor float64
	switch {
	case yearsLeft > 25:
		factor = a.Beta * 0.9
	case yearsLeft > 15:
		factor = a.Beta
	case yearsLeft > 8:
		factor = formulas.Clamp(a.Beta*1.2, 0.0, 1.0)
	case yearsLeft > 3:
		factor = 1.1
	default:
		factor = 1.3 // Panic saving
	}

	return suggestedRate * factor
}
