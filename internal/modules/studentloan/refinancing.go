package studentloan

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// REFINANCING BEHAVIOR
// =============================================================================
// Refinancing has two hard gates (rate savings and credit score) and is then a
// probability shaped by inertia, literacy, federal-loan protection bias and
// momentum from repeated consideration. State persists across calls on one
// RefinancingState; each borrower trajectory owns its own state.

const (
	// Hard gates.
	minRateSavings = 0.01 // one percentage point
	minCreditScore = 650

	// Rate savings of 5 points or more saturate the base probability.
	savingsSaturation = 0.05

	// Inertia window: refinancing activity peaks in years 2-5 after
	// graduation and tails off afterwards.
	peakWindowStartYears = 2.0
	peakWindowEndYears   = 5.0
	earlyInertiaFactor   = 0.5
	lateInertiaDecay     = 0.1
	lateInertiaFloor     = 0.3

	literacyBaseFactor = 0.5

	// Federal borrowers hesitate to give up income-driven plans and
	// forgiveness eligibility.
	federalProtectionFactor = 0.6

	// Each prior consideration makes the next one more likely.
	momentumPerConsideration = 0.10
	momentumCap              = 1.5
)

// RefinancingState tracks one borrower's refinancing consideration history.
type RefinancingState struct {
	TimesConsidered int `json:"times_considered"`
	TimesApplied    int `json:"times_applied"`
}

// RefinancingDecision is the outcome of one refinancing evaluation.
type RefinancingDecision struct {
	Refinance   bool    `json:"refinance"`
	Probability float64 `json:"probability"`
	RateSavings float64 `json:"rate_savings"`
	Reason      string  `json:"reason"`
}

// RefinancingBehavior decides whether a borrower refinances.
type RefinancingBehavior struct {
	FinancialLiteracy float64

	rng *rand.Rand
}

// NewRefinancingBehavior builds a refinancing decider from profile parameters,
// rolling stochastic accepts from src.
func NewRefinancingBehavior(params profile.Parameters, src rand.Source) *RefinancingBehavior {
	return &RefinancingBehavior{
		FinancialLiteracy: params.FinancialLiteracy,
		rng:               rand.New(src),
	}
}

// inertiaFactor returns the time-dependent inertia multiplier. Inertia is
// lowest (factor 1.0) inside the peak refinancing window.
func inertiaFactor(yearsSinceGraduation float64) float64 {
	switch {
	case yearsSinceGraduation < peakWindowStartYears:
		return earlyInertiaFactor
	case yearsSinceGraduation <= peakWindowEndYears:
		return 1.0
	default:
		f := 1.0 - lateInertiaDecay*(yearsSinceGraduation-peakWindowEndYears)
		return formulas.Clamp(f, lateInertiaFloor, 1.0)
	}
}

// WillRefinance evaluates one refinancing opportunity and records the
// consideration in state. Both gates must pass before any probability is
// computed.
func (r *RefinancingBehavior) WillRefinance(
	state *RefinancingState,
	currentRate float64,
	marketRate float64,
	creditScore int,
	yearsSinceGraduation float64,
	federalLoan bool,
) RefinancingDecision {
	state.TimesConsidered++

	savings := currentRate - marketRate
	if savings < minRateSavings {
		return RefinancingDecision{RateSavings: savings, Reason: "rate savings below one point"}
	}
	if creditScore < minCreditScore {
		return RefinancingDecision{RateSavings: savings, Reason: "credit score below lender minimum"}
	}

	p := formulas.Clamp01(savings / savingsSaturation)
	p *= inertiaFactor(yearsSinceGraduation)
	p *= literacyBaseFactor + literacyBaseFactor*r.FinancialLiteracy
	if federalLoan {
		p *= federalProtectionFactor
	}

	momentum := 1.0 + momentumPerConsideration*float64(state.TimesConsidered-1)
	if momentum > momentumCap {
		momentum = momentumCap
	}
	p = formulas.Clamp01(p * momentum)

	if r.rng.Float64() >= p {
		return RefinancingDecision{Probability: p, RateSavings: savings, Reason: "considered but deferred"}
	}

	state.TimesApplied++
	return RefinancingDecision{
		Refinance:   true,
		Probability: p,
		RateSavings: savings,
		Reason:      fmt.Sprintf("refinanced for %.2f point savings", savings*100),
	}
}
