package studentloan

import (
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// Plan identifies a repayment strategy.
type Plan string

const (
	PlanStandard     Plan = "standard"
	PlanIncomeDriven Plan = "income_driven"
	PlanAggressive   Plan = "aggressive"
	PlanRefinance    Plan = "refinance"
)

// Plans lists all repayment plans in scoring order.
var Plans = []Plan{PlanStandard, PlanIncomeDriven, PlanAggressive, PlanRefinance}

// ParsePlan normalizes a plan label, defaulting to standard.
func ParsePlan(s string) Plan {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanIncomeDriven:
		return PlanIncomeDriven
	case PlanAggressive:
		return PlanAggressive
	case PlanRefinance:
		return PlanRefinance
	default:
		return PlanStandard
	}
}

// =============================================================================
// PLAN PREFERENCE SCORING
// =============================================================================
// Each plan gets an additive preference score in [0,1]. The weights encode who
// gravitates to which plan: low-literacy borrowers default to standard,
// burdened present-focused borrowers want payment relief, literate
// future-oriented borrowers attack the principal, and risk-tolerant literate
// borrowers shop rates.

const (
	// standard: the default choice, stickier for low-literacy borrowers.
	standardBase            = 0.40
	standardIlliteracyBonus = 0.20
	standardLowBurdenBonus  = 0.10

	// income_driven: payment relief, driven by burden and present focus.
	incomeDrivenBase         = 0.30
	incomeDrivenBurdenWeight = 0.30
	incomeDrivenPresentBonus = 0.20
	incomeDrivenSafetyBonus  = 0.10

	// aggressive: principal attack, driven by literacy, future orientation
	// and debt shame, discouraged by heavy burden.
	aggressiveBase           = 0.20
	aggressiveLiteracyWeight = 0.30
	aggressiveFutureWeight   = 0.30
	aggressiveShameWeight    = 0.20
	aggressiveBurdenPenalty  = 0.20

	// refinance: rate shopping, needs literacy and risk appetite, peaks in
	// the years 2-5 refinancing window.
	refinanceBase           = 0.15
	refinanceLiteracyWeight = 0.30
	refinanceRiskWeight     = 0.20
	refinanceWindowBonus    = 0.10

	// planNoiseSigma is the Gaussian noise applied when picking the
	// preferred plan, modeling day-to-day inconsistency in plan choice.
	planNoiseSigma = 0.1
)

// RepaymentPsychology scores repayment plans against a borrower's traits.
type RepaymentPsychology struct {
	FinancialLiteracy float64
	FutureOrientation float64
	DebtShame         float64
	RiskTolerance     float64

	noise distuv.Normal
}

// NewRepaymentPsychology builds a plan scorer from profile parameters, drawing
// choice noise from src.
func NewRepaymentPsychology(params profile.Parameters, src rand.Source) *RepaymentPsychology {
	return &RepaymentPsychology{
		FinancialLiteracy: params.FinancialLiteracy,
		FutureOrientation: params.FutureOrientation,
		DebtShame:         params.DebtShameLevel,
		RiskTolerance:     params.RiskTolerance,
		noise:             distuv.Normal{Mu: 0, Sigma: planNoiseSigma, Src: src},
	}
}

// PlanPreferenceScore returns the deterministic preference score in [0,1] for
// one plan given the borrower's debt-to-income ratio and years since
// graduation.
func (p *RepaymentPsychology) PlanPreferenceScore(plan Plan, debtToIncome, yearsSinceGraduation float64) float64 {
	burden := formulas.Clamp01(debtToIncome)

	var score float64
	switch plan {
	case PlanIncomeDriven:
		score = incomeDrivenBase +
			incomeDrivenBurdenWeight*burden +
			incomeDrivenPresentBonus*(1.0-p.FutureOrientation) +
			incomeDrivenSafetyBonus*(1.0-p.RiskTolerance)
	case PlanAggressive:
		score = aggressiveBase +
			aggressiveLiteracyWeight*p.FinancialLiteracy +
			aggressiveFutureWeight*p.FutureOrientation +
			aggressiveShameWeight*p.DebtShame -
			aggressiveBurdenPenalty*burden
	case PlanRefinance:
		window := 0.5
		if yearsSinceGraduation >= 2.0 && yearsSinceGraduation <= 5.0 {
			window = 1.0
		}
		score = refinanceBase +
			refinanceLiteracyWeight*p.FinancialLiteracy +
			refinanceRiskWeight*p.RiskTolerance +
			refinanceWindowBonus*window
	default: // standard
		score = standardBase +
			standardIlliteracyBonus*(1.0-p.FinancialLiteracy) +
			standardLowBurdenBonus*(1.0-burden)
	}

	return formulas.Clamp01(score)
}

// PreferredPlan picks the plan with the highest Gaussian-noised preference
// score. Noise is redrawn per plan per call.
func (p *RepaymentPsychology) PreferredPlan(debtToIncome, yearsSinceGraduation float64) Plan {
	best := PlanStandard
	bestScore := -1.0
	for _, plan := range Plans {
		score := p.PlanPreferenceScore(plan, debtToIncome, yearsSinceGraduation) + p.noise.Rand()
		if score > bestScore {
			best = plan
			bestScore = score
		}
	}
	return best
}
