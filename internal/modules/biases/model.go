package biases

import (
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
)

// =============================================================================
// COMPOSITE BIAS MODEL
// =============================================================================

// Context keys recognized by ApplyAllBiases. A bias calculator runs only when
// its triggering key is present in the decision context.
const (
	KeyPotentialGain     = "potential_gain"
	KeyPotentialLoss     = "potential_loss"
	KeyProbabilityOfGain = "probability_of_gain"
	KeyMonthlyIncome     = "monthly_income"
	KeyWindfallAmount    = "windfall_amount"
	KeyCurrentDebt       = "current_debt"
	KeyEmergencyFundGap  = "emergency_fund_gap"
	KeyIncomeGrowth      = "income_growth"
	KeyInitialOffer      = "initial_offer"
	KeyMarketRate        = "market_rate"
)

// Defaults used when a triggering key is present but its companions are not.
const (
	defaultGainProbability = 0.5
	defaultMarketPremium   = 1.15
	// Savings-decision framing derived from monthly income
	immediateWantFraction = 0.20
	futureNeedFraction    = 3.0 // Three months of income, one year out
	futureNeedHorizon     = 12.0
	defaultOptimalRate    = 0.20
)

// Results holds per-bias sub-results. A nil field means the corresponding bias
// was not triggered by the context (not an error).
type Results struct {
	LossAversion     *RiskDecision      `json:"loss_aversion,omitempty"`
	PresentBias      *SavingsDecision   `json:"present_bias,omitempty"`
	MentalAccounting *WindfallResult    `json:"mental_accounting,omitempty"`
	OptimismBias     *OptimismResult    `json:"optimism_bias,omitempty"`
	Anchoring        *NegotiationResult `json:"anchoring,omitempty"`
}

// OptimismResult reports the biased perception of an estimated growth rate.
type OptimismResult struct {
	EstimatedGrowth float64 `json:"estimated_growth"`
	PerceivedGrowth float64 `json:"perceived_growth"`
}

// Scenario-adjustment multipliers: how strongly biases distort each scenario.
var scenarioAdjustment = map[string]float64{
	"retirement":     0.70,
	"investment":     0.80,
	"student_loan":   0.85,
	"emergency_fund": 0.90,
	"general":        1.00,
}

// Demographic-adjustment multipliers on the scenario factor.
var demographicAdjustment = map[profile.Demographic]float64{
	profile.DemographicGenZ:       0.85,
	profile.DemographicMillennial: 0.90,
	profile.DemographicMidcareer:  1.00,
	profile.DemographicSenior:     1.05,
}

// Model composes the six bias calculators and applies them to a decision
// context.
type Model struct {
	LossAversion     *LossAversionCalculator
	PresentBias      *PresentBiasAdjuster
	MentalAccounting *MentalAccountingModel
	Optimism         *OptimismBiasCorrector
	Anchoring        *AnchoringEffect
	Framing          *FramingEffectModel
}

// NewModel creates a bias model parameterized from profile parameters, drawing
// stochastic framing choices from src.
func NewModel(params profile.Parameters, src rand.Source) *Model {
	return &Model{
		LossAversion:     NewLossAversionCalculator(params.LossAversionStrength),
		PresentBias:      NewPresentBiasAdjuster(params.PresentBiasBeta),
		MentalAccounting: NewMentalAccountingModel(),
		Optimism:         NewOptimismBiasCorrector(params.OptimismBias),
		Anchoring:        NewAnchoringEffect(params.AnchoringSusceptibility),
		Framing:          NewFramingEffectModel(src),
	}
}

// ApplyAllBiases inspects which keys are present in the decision context and
// conditionally invokes the matching calculators. Biases whose triggering keys
// are absent are simply absent from the result.
func (m *Model) ApplyAllBiases(ctx map[string]float64) Results {
	var out Results

	gain, hasGain := ctx[KeyPotentialGain]
	loss, hasLoss := ctx[KeyPotentialLoss]
	if hasGain && hasLoss {
		pGain := defaultGainProbability
		if p, ok := ctx[KeyProbabilityOfGain]; ok {
			pGain = p
		}
		decision := m.LossAversion.AdjustRiskDecision(gain, loss, pGain)
		out.LossAversion = &decision
	}

	if income, ok := ctx[KeyMonthlyIncome]; ok {
		decision := m.PresentBias.AdjustSavingsDecision(
			income*immediateWantFraction,
			income*futureNeedFraction,
			futureNeedHorizon,
			defaultOptimalRate,
		)
		out.PresentBias = &decision
	}

	if windfall, ok := ctx[KeyWindfallAmount]; ok {
		result := m.MentalAccounting.AllocateWindfall(
			windfall,
			SourceBonus,
			ctx[KeyCurrentDebt],
			ctx[KeyEmergencyFundGap],
		)
		out.MentalAccounting = &result
	}

	if growth, ok := ctx[KeyIncomeGrowth]; ok {
		out.OptimismBias = &OptimismResult{
			EstimatedGrowth: growth,
			PerceivedGrowth: m.Optimism.AdjustProbabilityEstimate(growth, true),
		}
	}

	if offer, ok := ctx[KeyInitialOffer]; ok {
		market := offer * defaultMarketPremium
		if rate, ok := ctx[KeyMarketRate]; ok {
			market = rate
		}
		result := m.Anchoring.SalaryNegotiation(offer, market, "mid")
		out.Anchoring = &result
	}

	return out
}

// AdjustmentFactor returns the combined scenario x demographic bias-adjustment
// multiplier (e.g. retirement x genz = 0.70 x 0.85). Unknown scenarios fall
// back to the general factor.
func (m *Model) AdjustmentFactor(scenario string, demographic profile.Demographic) float64 {
	scenarioFactor, ok := scenarioAdjustment[scenario]
	if !ok {
		scenarioFactor = scenarioAdjustment["general"]
	}
	demoFactor, ok := demographicAdjustment[demographic]
	if !ok {
		demoFactor = 1.0
	}
	return scenarioFactor * demoFactor
}
