// Package biases implements six cognitive-bias calculators from the
// behavioral-economics literature (loss aversion, present bias, mental
// accounting, optimism bias, anchoring, framing) and a composite model that
// applies them to a decision context.
package biases

import (
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// LOSS AVERSION (prospect theory)
// =============================================================================

// EmergencyTargetInflation scales how strongly loss aversion inflates the
// emergency-fund target: target *= 1 + (lambda-1) * 0.3.
const EmergencyTargetInflation = 0.3

// RiskDecision is the outcome of a loss-aversion-adjusted risk evaluation.
type RiskDecision struct {
	ExpectedValue       float64 `json:"expected_value"`
	RationalThreshold   float64 `json:"rational_threshold"`
	RequiredProbability float64 `json:"required_probability"`
	Accept              bool    `json:"accept"`
}

// LossAversionCalculator evaluates decisions with the Kahneman-Tversky value
// function. Stateless; safe for concurrent use.
type LossAversionCalculator struct {
	Lambda float64 // Loss-aversion coefficient
}

// NewLossAversionCalculator creates a calculator with the given lambda.
func NewLossAversionCalculator(lambda float64) *LossAversionCalculator {
	if lambda <= 0 {
		lambda = formulas.DefaultLossAversion
	}
	return &LossAversionCalculator{Lambda: lambda}
}

// Value returns the prospect-theory subjective value of x relative to reference.
func (c *LossAversionCalculator) Value(x, reference float64) float64 {
	return formulas.ProspectValue(x, reference, c.Lambda, formulas.ProspectAlpha)
}

// AdjustRiskDecision evaluates a gamble with potential gain and loss.
//
// The rational actor accepts when pGain > 0.5 (for symmetric stakes); the
// loss-averse actor requires pGain > loss/(gain+loss), which is >= 0.5 whenever
// the loss is at least as large as the gain. The returned decision uses the
// shifted threshold.
func (c *LossAversionCalculator) AdjustRiskDecision(gain, loss, pGain float64) RiskDecision {
	expectedValue := pGain*gain - (1.0-pGain)*loss

	required := 0.5
	if gain+loss > 0 {
		required = loss / (gain + loss)
	}

	return RiskDecision{
		ExpectedValue:       expectedValue,
		RationalThreshold:   0.5,
		RequiredProbability: required,
		Accept:              pGain > required,
	}
}

// EmergencyFundTargetAdjustment inflates a months-of-expenses target to account
// for loss-averse over-weighting of worst cases.
func (c *LossAversionCalculator) EmergencyFundTargetAdjustment(targetMonths float64) float64 {
	return targetMonths * (1.0 + (c.Lambda-1.0)*EmergencyTargetInflation)
}
