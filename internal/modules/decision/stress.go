package decision

import (
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// FINANCIAL STRESS SCORE
// =============================================================================
// A stress score is constructed fresh from live financial metrics at each
// decision point and never mutated afterwards. The overall score is a fixed
// weighted sum of five 0-1 component scores.

const (
	weightDebtStress        = 0.25
	weightLiquidityStress   = 0.30
	weightUncertaintyStress = 0.20
	weightEmergencyStress   = 0.15
	weightSocialStress      = 0.10

	// Debt-to-income above this is treated as maximal debt stress.
	dtiSaturation = 2.0

	// Liquidity stress decays as the emergency fund grows toward this many
	// months of coverage.
	fundComfortMonths = 6.0

	// Expense coverage (income/expenses) below 1.0 means the household is
	// underwater every month.
	coverageComfort = 1.5
)

// Metrics are the live financial inputs a stress score is built from.
type Metrics struct {
	DebtToIncome         float64 `json:"debt_to_income"`
	EmergencyFundMonths  float64 `json:"emergency_fund_months"`
	IncomeVolatility     float64 `json:"income_volatility"`
	ExpenseCoverageRatio float64 `json:"expense_coverage_ratio"`
	SocialPressure       float64 `json:"social_pressure"`
}

// StressScore holds the five weighted stress components, each in [0,1].
type StressScore struct {
	Debt        float64 `json:"debt_stress"`
	Liquidity   float64 `json:"liquidity_stress"`
	Uncertainty float64 `json:"uncertainty_stress"`
	Emergency   float64 `json:"emergency_stress"`
	Social      float64 `json:"social_stress"`
}

// Overall returns the fixed-weight combined stress in [0,1].
func (s StressScore) Overall() float64 {
	total := s.Debt*weightDebtStress +
		s.Liquidity*weightLiquidityStress +
		s.Uncertainty*weightUncertaintyStress +
		s.Emergency*weightEmergencyStress +
		s.Social*weightSocialStress
	return formulas.Clamp01(total)
}

// debtStress maps debt-to-income non-linearly: low ratios barely register,
// ratios above 1.0 accelerate toward saturation.
func debtStress(dti float64) float64 {
	if dti <= 0 {
		return 0
	}
	if dti <= 0.5 {
		return dti * 0.4
	}
	if dti <= 1.0 {
		return 0.2 + (dti-0.5)*0.8
	}
	return formulas.Clamp01(0.6 + (dti-1.0)/(dtiSaturation-1.0)*0.4)
}

// liquidityStress falls as emergency-fund coverage rises; zero coverage is
// maximal stress, six months is fully comfortable.
func liquidityStress(fundMonths float64) float64 {
	if fundMonths <= 0 {
		return 1.0
	}
	return formulas.Clamp01(1.0 - fundMonths/fundComfortMonths)
}

// uncertaintyStress amplifies income volatility; even moderate volatility
// registers strongly.
func uncertaintyStress(volatility float64) float64 {
	return formulas.Clamp01(volatility * 2.0)
}

// emergencyStress spikes when income no longer covers expenses.
func emergencyStress(coverage float64) float64 {
	if coverage <= 0 {
		return 1.0
	}
	if coverage < 1.0 {
		return formulas.Clamp01(0.5 + (1.0-coverage))
	}
	return formulas.Clamp01((coverageComfort - coverage) / coverageComfort)
}

// StressScoreFromMetrics builds a stress score from live financial metrics
// using the piecewise component mappings.
func StressScoreFromMetrics(m Metrics) StressScore {
	return StressScore{
		Debt:        debtStress(m.DebtToIncome),
		Liquidity:   liquidityStress(m.EmergencyFundMonths),
		Uncertainty: uncertaintyStress(m.IncomeVolatility),
		Emergency:   emergencyStress(m.ExpenseCoverageRatio),
		Social:      formulas.Clamp01(m.SocialPressure),
	}
}
