package biases

import (
	"strings"

	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// ANCHORING
// =============================================================================
// Estimates are adjusted insufficiently away from an initial anchor.

// Experience-level multipliers on anchoring susceptibility in negotiations:
// junior negotiators anchor harder on the first number on the table.
var experienceAnchorMultiplier = map[string]float64{
	"entry":  0.7,
	"mid":    0.5,
	"senior": 0.3,
}

// Optimal counteroffer premium over market rate.
const negotiationAskPremium = 1.10

// NegotiationResult is the outcome of an anchored salary negotiation.
type NegotiationResult struct {
	OptimalAsk         float64 `json:"optimal_ask"`
	ActualCounteroffer float64 `json:"actual_counteroffer"`
	AnchoringCost      float64 `json:"anchoring_cost"`
}

// AnchoringEffect models insufficient adjustment from anchors.
// Stateless; safe for concurrent use.
type AnchoringEffect struct {
	Susceptibility float64 // 0 = fully adjusts, 1 = stays on the anchor
}

// NewAnchoringEffect creates an anchoring model with the given susceptibility.
func NewAnchoringEffect(susceptibility float64) *AnchoringEffect {
	return &AnchoringEffect{Susceptibility: formulas.Clamp01(susceptibility)}
}

// AdjustEstimate returns the anchored estimate: the true value is approached
// only by the fraction (1 - susceptibility) of the distance from the anchor.
func (a *AnchoringEffect) AdjustEstimate(anchor, trueValue, susceptibility float64) float64 {
	s := formulas.Clamp01(susceptibility)
	return anchor + (trueValue-anchor)*(1.0-s)
}

// SalaryNegotiation computes the counteroffer an anchored negotiator actually
// makes, versus the market-rate-informed optimal ask. Experience reduces the
// effective susceptibility.
func (a *AnchoringEffect) SalaryNegotiation(
	initialOffer float64,
	marketRate float64,
	experienceLevel string,
) NegotiationResult {
	mult, ok := experienceAnchorMultiplier[strings.ToLower(strings.TrimSpace(experienceLevel))]
	if !ok {
		mult = experienceAnchorMultiplier["mid"]
	}
	effective := formulas.Clamp01(a.Susceptibility * mult)

	optimalAsk := marketRate * negotiationAskPremium
	actual := a.AdjustEstimate(initialOffer, optimalAsk, effective)

	return NegotiationResult{
		OptimalAsk:         optimalAsk,
		ActualCounteroffer: actual,
		AnchoringCost:      optimalAsk - actual,
	}
}
