package studentloan

import (
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// FORBEARANCE DECISION TREE
// =============================================================================
// Forbearance probability is built from additive hardship triggers, then
// reshaped by shame, literacy and present bias. A lifetime cap of 36 months is
// tracked in ForbearanceState; one state instance models one borrower's
// trajectory and must not be shared across trajectories.

const (
	// ForbearanceLifetimeCapMonths is the cumulative limit across one
	// borrower's lifetime.
	ForbearanceLifetimeCapMonths = 36

	// Additive hardship triggers.
	triggerPaymentBurden   = 0.4 // payment exceeds 30% of income
	triggerFundDepleted    = 0.3 // under one month of emergency savings
	triggerHighStress      = 0.2
	triggerRecentGraduate  = 0.1 // within two years of graduation
	paymentBurdenThreshold = 0.30
	fundDepletedMonths     = 1.0
	recentGraduateYears    = 2.0

	// Modifier shape constants. Shame suppresses asking for relief. Literacy
	// cuts both ways: low-literacy borrowers often do not know the option
	// exists, high-literacy borrowers know interest keeps accruing.
	shameSuppression       = 0.5
	lowLiteracyThreshold   = 0.4
	highLiteracyThreshold  = 0.7
	lowLiteracyMultiplier  = 0.80
	highLiteracyMultiplier = 0.90
	presentBiasBoost       = 0.5

	// Granted forbearance duration range in months.
	forbearanceMinMonths = 3
	forbearanceMaxMonths = 12
)

// ForbearanceState tracks one borrower's cumulative forbearance usage.
type ForbearanceState struct {
	MonthsUsed int `json:"months_used"`
}

// ForbearanceDecision is the outcome of one forbearance evaluation.
type ForbearanceDecision struct {
	Use         bool    `json:"use"`
	Months      int     `json:"months"`
	Probability float64 `json:"probability"`
	Reason      string  `json:"reason"`
}

// ForbearanceInputs describes the borrower's situation at decision time.
type ForbearanceInputs struct {
	PaymentBurden        float64 // monthly payment / monthly income
	EmergencyFundMonths  float64
	StressLevel          profile.StressLevel
	YearsSinceGraduation float64
}

// ForbearanceDecisionTree decides whether a borrower pauses payments.
type ForbearanceDecisionTree struct {
	DebtShame         float64
	FinancialLiteracy float64
	PresentBiasBeta   float64

	rng *rand.Rand
}

// NewForbearanceDecisionTree builds a forbearance decider from profile
// parameters, rolling stochastic accepts from src.
func NewForbearanceDecisionTree(params profile.Parameters, src rand.Source) *ForbearanceDecisionTree {
	return &ForbearanceDecisionTree{
		DebtShame:         params.DebtShameLevel,
		FinancialLiteracy: params.FinancialLiteracy,
		PresentBiasBeta:   params.PresentBiasBeta,
		rng:               rand.New(src),
	}
}

// Probability returns the deterministic forbearance probability for the given
// inputs, before the stochastic accept roll.
func (t *ForbearanceDecisionTree) Probability(in ForbearanceInputs) float64 {
	p := 0.0
	if in.PaymentBurden > paymentBurdenThreshold {
		p += triggerPaymentBurden
	}
	if in.EmergencyFundMonths < fundDepletedMonths {
		p += triggerFundDepleted
	}
	if in.StressLevel >= profile.StressHigh {
		p += triggerHighStress
	}
	if in.YearsSinceGraduation < recentGraduateYears {
		p += triggerRecentGraduate
	}
	if p == 0 {
		return 0
	}

	p *= 1.0 - shameSuppression*t.DebtShame

	switch {
	case t.FinancialLiteracy < lowLiteracyThreshold:
		p *= lowLiteracyMultiplier
	case t.FinancialLiteracy > highLiteracyThreshold:
		p *= highLiteracyMultiplier
	}

	p *= 1.0 + presentBiasBoost*(1.0-t.PresentBiasBeta)

	return formulas.Clamp01(p)
}

// ShouldUseForbearance evaluates the decision and, on accept, draws a duration
// and charges it against the state's lifetime cap. The granted duration never
// pushes state.MonthsUsed past the cap.
func (t *ForbearanceDecisionTree) ShouldUseForbearance(state *ForbearanceState, in ForbearanceInputs) ForbearanceDecision {
	remaining := ForbearanceLifetimeCapMonths - state.MonthsUsed
	if remaining <= 0 {
		return ForbearanceDecision{Reason: "lifetime forbearance limit reached"}
	}

	p := t.Probability(in)
	if p == 0 {
		return ForbearanceDecision{Reason: "no hardship triggers"}
	}
	if t.rng.Float64() >= p {
		return ForbearanceDecision{Probability: p, Reason: "declined despite hardship"}
	}

	months := forbearanceMinMonths + t.rng.Intn(forbearanceMaxMonths-forbearanceMinMonths+1)
	if months > remaining {
		months = remaining
	}
	state.MonthsUsed += months

	return ForbearanceDecision{
		Use:         true,
		Months:      months,
		Probability: p,
		Reason:      "hardship triggers accepted",
	}
}
