package enhancer

import (
	"fmt"
	"math"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/internal/modules/studentloan"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// Plan choice stretches or shrinks the payoff timeline.
var planTimelineMultiplier = map[studentloan.Plan]float64{
	studentloan.PlanStandard:     1.0,
	studentloan.PlanIncomeDriven: 1.3,
	studentloan.PlanAggressive:   0.8,
	studentloan.PlanRefinance:    0.9,
}

const (
	// Forbearance adds between three and twelve months when triggered.
	forbearanceExtensionMin = 3.0
	forbearanceExtensionMax = 12.0

	// Refinancing is only evaluated on every hundredth trial; when it fires
	// it cuts the timeline.
	refinanceTrialStride       = 100
	refinanceTimelineFactor    = 0.85
	refinanceAssumedRateCut    = 0.015
	defaultLoanInterestRate    = 0.055
	defaultYearsSinceGrad      = 3.0
	forbearanceStressPerBurden = 2.0
)

// LoanProfile is the per-scenario profile data for student-loan enhancement.
type LoanProfile struct {
	StudentLoanBalance   float64 `json:"student_loan_balance"`
	MonthlyIncome        float64 `json:"monthly_income"`
	InterestRate         float64 `json:"interest_rate"`
	CareerType           string  `json:"career_type"`
	YearsSinceGraduation float64 `json:"years_since_graduation"`
}

// LoanMetrics summarizes one student-loan enhancement batch.
type LoanMetrics struct {
	ForbearanceRate       float64 `json:"forbearance_rate"`
	RefinancingRate       float64 `json:"refinancing_rate"`
	MostCommonPlan        string  `json:"most_common_plan"`
	MeanBehavioralImpact  float64 `json:"mean_behavioral_impact_months"`
	ProcrastinationFactor float64 `json:"procrastination_factor"`
}

// EnhanceStudentLoan reshapes raw per-trial payoff timelines (months to loan
// payoff) through repayment psychology. Each trial independently picks a plan
// (stretching or shrinking its timeline), rolls forbearance, and on every
// hundredth trial rolls a refinancing event.
func (e *Enhancer) EnhanceStudentLoan(
	base []float64,
	data LoanProfile,
	factors RandomFactors,
) ([]float64, LoanMetrics, error) {
	if data.MonthlyIncome <= 0 {
		return nil, LoanMetrics{}, fmt.Errorf("monthly income must be positive, got %.2f", data.MonthlyIncome)
	}
	if data.StudentLoanBalance < 0 {
		return nil, LoanMetrics{}, fmt.Errorf("loan balance must be non-negative, got %.2f", data.StudentLoanBalance)
	}

	rate := data.InterestRate
	if rate <= 0 {
		rate = defaultLoanInterestRate
	}
	years := data.YearsSinceGraduation
	if years <= 0 {
		years = defaultYearsSinceGrad
	}

	dti := data.StudentLoanBalance / (data.MonthlyIncome * 12.0)
	adjusted := make([]float64, len(base))
	planCounts := make(map[studentloan.Plan]int)
	impacts := make([]float64, len(base))
	forbearances := make([]float64, len(base))
	refinances := make([]float64, len(base))
	ratios := make([]float64, 0, len(base))

	for i, months := range base {
		plan := e.Loans.Psychology.PreferredPlan(dti, years)
		planCounts[plan]++
		adj := months * planTimelineMultiplier[plan]

		burden := studentloan.PlanPayment(plan, data.StudentLoanBalance, rate, data.MonthlyIncome) / data.MonthlyIncome
		volatileBurden := formulas.Clamp01(burden + factors.volatility(i))
		p := e.Loans.Forbearance.Probability(studentloan.ForbearanceInputs{
			PaymentBurden:        volatileBurden,
			EmergencyFundMonths:  (1.0 - volatileBurden) * e.Params.EmergencyFundTargetMonths,
			StressLevel:          profile.StressLevelFromScore(formulas.Clamp01(volatileBurden * forbearanceStressPerBurden)),
			YearsSinceGraduation: years,
		})
		if e.rng.Float64() < p {
			adj += forbearanceExtensionMin + e.rng.Float64()*(forbearanceExtensionMax-forbearanceExtensionMin)
			forbearances[i] = 1.0
		}

		if (i+1)%refinanceTrialStride == 0 {
			var scratch studentloan.RefinancingState
			decision := e.Loans.Refinancing.WillRefinance(
				&scratch, rate, rate-refinanceAssumedRateCut, e.Loans.CreditScore(), years, true)
			if decision.Refinance {
				adj *= refinanceTimelineFactor
				refinances[i] = 1.0
			}
		}

		adjusted[i] = adj
		impacts[i] = math.Abs(adj - months)
		if months > 0 {
			ratios = append(ratios, adj/months)
		}
	}

	best := studentloan.PlanStandard
	bestCount := -1
	for _, plan := range studentloan.Plans {
		if planCounts[plan] > bestCount {
			best = plan
			bestCount = planCounts[plan]
		}
	}
	metrics := LoanMetrics{
		ForbearanceRate:       formulas.Mean(forbearances),
		RefinancingRate:       formulas.Mean(refinances),
		MostCommonPlan:        string(best),
		MeanBehavioralImpact:  formulas.Mean(impacts),
		ProcrastinationFactor: formulas.Mean(ratios),
	}

	e.log.Debug().
		Int("trials", len(base)).
		Str("most_common_plan", metrics.MostCommonPlan).
		Float64("forbearance_rate", metrics.ForbearanceRate).
		Float64("procrastination", metrics.ProcrastinationFactor).
		Msg("student loan simulation enhanced")

	return adjusted, metrics, nil
}
