package enhancer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

const (
	// Trials with at least a year of runway are left untouched.
	reductionRunwayThreshold = 12.0

	// Trials under three months of runway additionally roll help seeking.
	helpRunwayThreshold = 3.0

	// A successful help ask extends the runway by one to three months.
	helpExtensionMin = 1.0
	helpExtensionMax = 3.0

	// Income volatility feeds into perceived stress.
	volatilityStressWeight = 0.5
)

// EmergencyProfile is the per-scenario profile data for emergency-fund
// enhancement.
type EmergencyProfile struct {
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	EmergencyFundBalance float64 `json:"emergency_fund_balance"`
	Demographic          string  `json:"demographic"`
}

// EmergencyMetrics summarizes one emergency-fund enhancement batch. All
// fields are plain numbers, safe for direct JSON serialization.
type EmergencyMetrics struct {
	MeanExpenseReduction float64 `json:"mean_expense_reduction"`
	MaxExpenseReduction  float64 `json:"max_expense_reduction"`
	HelpSeekingRate      float64 `json:"help_seeking_rate"`
	MeanStressLevel      float64 `json:"mean_stress_level"`
	MeanBehavioralImpact float64 `json:"mean_behavioral_impact"`
	FractionImproved     float64 `json:"fraction_improved"`
	TrialsAdjusted       int     `json:"trials_adjusted"`
}

// EnhanceEmergencyFund reshapes raw per-trial runway outcomes (months of
// emergency-fund coverage) through behavioral adjustment. Trials with twelve
// or more months of runway are returned unchanged, bit for bit. Shorter trials
// get their runway recomputed under the behavioral expense reduction, and
// trials under three months additionally roll a help-seeking extension.
func (e *Enhancer) EnhanceEmergencyFund(
	base []float64,
	data EmergencyProfile,
	factors RandomFactors,
) ([]float64, EmergencyMetrics, error) {
	if data.MonthlyExpenses <= 0 {
		return nil, EmergencyMetrics{}, fmt.Errorf("monthly expenses must be positive, got %.2f", data.MonthlyExpenses)
	}
	if data.EmergencyFundBalance < 0 {
		return nil, EmergencyMetrics{}, fmt.Errorf("emergency fund balance must be non-negative, got %.2f", data.EmergencyFundBalance)
	}

	demographic := profile.ParseDemographic(data.Demographic)
	helpAmount := distuv.Uniform{Min: helpExtensionMin, Max: helpExtensionMax, Src: e.src}

	adjusted := make([]float64, len(base))
	stresses := make([]float64, len(base))
	deltas := make([]float64, len(base))
	impacts := make([]float64, len(base))
	helps := make([]float64, len(base))
	reductions := make([]float64, 0, len(base))

	for i, months := range base {
		adjusted[i] = months

		stress := formulas.Clamp(1.0-months/6.0, 0.05, 0.95)
		stress = formulas.Clamp(stress+factors.volatility(i)*volatilityStressWeight, 0.05, 0.95)
		stresses[i] = stress

		if months < reductionRunwayThreshold {
			crisisMonths := int(math.Ceil(months))
			if crisisMonths < 1 {
				crisisMonths = 1
			}
			reduction := e.Emergency.ExpenseReduction(crisisMonths, e.Params.PersonalityType, nil)
			adjusted[i] = data.EmergencyFundBalance / (data.MonthlyExpenses * (1.0 - reduction))
			reductions = append(reductions, reduction)
		}

		if months < helpRunwayThreshold {
			threshold := e.Emergency.HelpSeekingThreshold(months, e.Params.SocialNetwork, demographic)
			if threshold == 0 && e.rng.Float64() < e.Social.Family.HelpProbability(stress) {
				adjusted[i] += helpAmount.Rand()
				helps[i] = 1.0
			}
		}

		deltas[i] = adjusted[i] - months
		impacts[i] = math.Abs(deltas[i])
	}

	metrics := EmergencyMetrics{
		MeanExpenseReduction: formulas.Mean(reductions),
		MaxExpenseReduction:  formulas.Max(reductions),
		HelpSeekingRate:      formulas.Mean(helps),
		MeanStressLevel:      formulas.Mean(stresses),
		MeanBehavioralImpact: formulas.Mean(impacts),
		FractionImproved:     formulas.FractionWhere(deltas, func(d float64) bool { return d > 0 }),
		TrialsAdjusted:       len(reductions),
	}

	e.log.Debug().
		Int("trials", len(base)).
		Int("adjusted", metrics.TrialsAdjusted).
		Float64("mean_reduction", metrics.MeanExpenseReduction).
		Float64("help_rate", metrics.HelpSeekingRate).
		Msg("emergency fund simulation enhanced")

	return adjusted, metrics, nil
}
