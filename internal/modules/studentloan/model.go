package studentloan

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// STUDENT LOAN BEHAVIOR MODEL
// =============================================================================
// Composes plan psychology, forbearance, refinancing and forgiveness into a
// month-by-month repayment journey. One Model instance carries the stateful
// sub-models for one borrower trajectory and must not be shared across
// concurrent trajectories.

const (
	// DefaultMaxMonths bounds a repayment journey at thirty years.
	DefaultMaxMonths = 360

	// Standard plans amortize over ten years.
	standardTermMonths = 120

	aggressivePaymentFactor = 1.5
	incomeDrivenShare       = 0.10

	// Checkpoint cadence within the journey loop.
	planCheckpointMonths      = 12
	refinanceCheckpointMonths = 6
	refinanceEarliestMonth    = 12

	// Refinance offers shave between 0.5 and 2.5 points off the current rate.
	refinanceOfferMinCut = 0.005
	refinanceOfferMaxCut = 0.025

	// Credit score proxy derived from financial literacy.
	creditScoreBase          = 600
	creditScoreLiteracySpan  = 200
	pslfQualifyingMonths     = PSLFRequiredYears * 12
	privateOfferRatioMin     = 1.0
	privateOfferRatioSpread  = 0.5
	forbearanceStressPerUnit = 2.0
)

// ForbearanceEvent records one granted forbearance period.
type ForbearanceEvent struct {
	Month  int    `json:"month"`
	Months int    `json:"months"`
	Reason string `json:"reason"`
}

// RefinanceEvent records one completed refinancing.
type RefinanceEvent struct {
	Month   int     `json:"month"`
	OldRate float64 `json:"old_rate"`
	NewRate float64 `json:"new_rate"`
}

// PlanChange records one repayment-plan switch.
type PlanChange struct {
	Month int  `json:"month"`
	From  Plan `json:"from"`
	To    Plan `json:"to"`
}

// JourneyResult is the outcome of one full repayment journey.
type JourneyResult struct {
	MonthsToPayoff    int                `json:"months_to_payoff"`
	PaidOff           bool               `json:"paid_off"`
	TotalPaid         float64            `json:"total_paid"`
	TotalInterest     float64            `json:"total_interest"`
	ForgivenAmount    float64            `json:"forgiven_amount"`
	FinalPlan         Plan               `json:"final_plan"`
	ForbearanceEvents []ForbearanceEvent `json:"forbearance_events"`
	RefinanceEvents   []RefinanceEvent   `json:"refinance_events"`
	PlanChanges       []PlanChange       `json:"plan_changes"`
}

// Model orchestrates the four loan-decision sub-models.
type Model struct {
	Psychology  *RepaymentPsychology
	Forbearance *ForbearanceDecisionTree
	Refinancing *RefinancingBehavior
	Forgiveness *ForgivenessCommitment

	params profile.Parameters
	rng    *rand.Rand
	log    zerolog.Logger
}

// NewModel builds a fully-parameterized loan behavior model. All stochastic
// draws across the sub-models come from src.
func NewModel(params profile.Parameters, src rand.Source, log zerolog.Logger) *Model {
	return &Model{
		Psychology:  NewRepaymentPsychology(params, src),
		Forbearance: NewForbearanceDecisionTree(params, src),
		Refinancing: NewRefinancingBehavior(params, src),
		Forgiveness: NewForgivenessCommitment(params, src),
		params:      params,
		rng:         rand.New(src),
		log:         log.With().Str("component", "studentloan_model").Logger(),
	}
}

// amortizedPayment is the fixed monthly payment retiring balance over months
// at annualRate.
func amortizedPayment(balance, annualRate float64, months int) float64 {
	if balance <= 0 || months <= 0 {
		return 0
	}
	r := annualRate / 12.0
	if r <= 0 {
		return balance / float64(months)
	}
	return balance * r / (1.0 - math.Pow(1.0+r, -float64(months)))
}

// PlanPayment returns the monthly payment under the given plan for the current
// balance and rate.
func PlanPayment(plan Plan, balance, annualRate, monthlyIncome float64) float64 {
	switch plan {
	case PlanIncomeDriven:
		return incomeDrivenShare * monthlyIncome
	case PlanAggressive:
		return aggressivePaymentFactor * amortizedPayment(balance, annualRate, standardTermMonths)
	default: // standard and refinance both amortize over the full term
		return amortizedPayment(balance, annualRate, standardTermMonths)
	}
}

// CreditScore approximates a borrower's score from financial literacy.
func (m *Model) CreditScore() int {
	return creditScoreBase + int(creditScoreLiteracySpan*m.params.FinancialLiteracy)
}

// SimulateRepaymentJourney walks one borrower month by month from the initial
// balance to payoff, forgiveness or the horizon. Forbearance is evaluated at
// annual checkpoints (interest compounds across the granted gap), refinancing
// every six months after the first year, and plan choice is reassessed
// annually.
func (m *Model) SimulateRepaymentJourney(
	initialBalance float64,
	monthlyIncome float64,
	interestRate float64,
	careerType string,
	maxMonths int,
) (*JourneyResult, error) {
	if monthlyIncome <= 0 {
		return nil, fmt.Errorf("monthly income must be positive, got %.2f", monthlyIncome)
	}
	if initialBalance < 0 {
		return nil, fmt.Errorf("initial balance must be non-negative, got %.2f", initialBalance)
	}
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}

	result := &JourneyResult{
		ForbearanceEvents: []ForbearanceEvent{},
		RefinanceEvents:   []RefinanceEvent{},
		PlanChanges:       []PlanChange{},
	}
	if initialBalance == 0 {
		result.PaidOff = true
		result.FinalPlan = PlanStandard
		return result, nil
	}

	dti := initialBalance / (monthlyIncome * 12.0)
	plan := m.Psychology.PreferredPlan(dti, 0)
	rate := interestRate
	balance := initialBalance
	payment := PlanPayment(plan, balance, rate, monthlyIncome)

	var forbearance ForbearanceState
	var refinancing RefinancingState
	var forgiveness ForgivenessState
	pursuingPSLF := m.Forgiveness.WillPursuePSLF(careerType)
	qualifyingMonths := 0

	month := 1
	for month <= maxMonths && balance > 0 {
		years := float64(month-1) / 12.0
		burden := payment / monthlyIncome

		if month > 1 && (month-1)%planCheckpointMonths == 0 {
			currentDTI := balance / (monthlyIncome * 12.0)
			if next := m.Psychology.PreferredPlan(currentDTI, years); next != plan {
				result.PlanChanges = append(result.PlanChanges, PlanChange{Month: month, From: plan, To: next})
				plan = next
				payment = PlanPayment(plan, balance, rate, monthlyIncome)
				m.log.Debug().Int("month", month).Str("plan", string(plan)).Msg("repayment plan changed")
			}

			if pursuingPSLF && !m.Forgiveness.WillStayCommitted(&forgiveness,
				privateOfferRatioMin+m.rng.Float64()*privateOfferRatioSpread) {
				pursuingPSLF = false
				m.log.Debug().Int("month", month).Msg("abandoned forgiveness track")
			}

			decision := m.Forbearance.ShouldUseForbearance(&forbearance, ForbearanceInputs{
				PaymentBurden:        burden,
				EmergencyFundMonths:  (1.0 - formulas.Clamp01(burden)) * m.params.EmergencyFundTargetMonths,
				StressLevel:          profile.StressLevelFromScore(formulas.Clamp01(burden * forbearanceStressPerUnit)),
				YearsSinceGraduation: years,
			})
			if decision.Use {
				balance *= math.Pow(1.0+rate/12.0, float64(decision.Months))
				result.ForbearanceEvents = append(result.ForbearanceEvents, ForbearanceEvent{
					Month:  month,
					Months: decision.Months,
					Reason: decision.Reason,
				})
				month += decision.Months
				m.log.Debug().Int("month", month).Int("duration", decision.Months).Msg("entered forbearance")
				continue
			}
		}

		if month > refinanceEarliestMonth && (month-1)%refinanceCheckpointMonths == 0 {
			offer := rate - (refinanceOfferMinCut + m.rng.Float64()*(refinanceOfferMaxCut-refinanceOfferMinCut))
			decision := m.Refinancing.WillRefinance(&refinancing, rate, offer, m.CreditScore(), years, plan != PlanRefinance)
			if decision.Refinance {
				result.RefinanceEvents = append(result.RefinanceEvents, RefinanceEvent{Month: month, OldRate: rate, NewRate: offer})
				if plan != PlanRefinance {
					result.PlanChanges = append(result.PlanChanges, PlanChange{Month: month, From: plan, To: PlanRefinance})
				}
				rate = offer
				plan = PlanRefinance
				payment = PlanPayment(plan, balance, rate, monthlyIncome)
			}
		}

		interest := balance * rate / 12.0
		pay := math.Min(payment, balance+interest)
		balance += interest - pay
		result.TotalPaid += pay
		result.TotalInterest += interest

		if pursuingPSLF && plan == PlanIncomeDriven {
			qualifyingMonths++
			if qualifyingMonths >= pslfQualifyingMonths && balance > 0 {
				result.ForgivenAmount = balance
				balance = 0
			}
		}

		month++
	}

	result.FinalPlan = plan
	if balance <= 0 {
		result.PaidOff = true
		result.MonthsToPayoff = month - 1
	} else {
		result.MonthsToPayoff = maxMonths
	}

	m.log.Debug().
		Int("months", result.MonthsToPayoff).
		Bool("paid_off", result.PaidOff).
		Str("final_plan", string(result.FinalPlan)).
		Float64("total_interest", result.TotalInterest).
		Msg("repayment journey complete")

	return result, nil
}
