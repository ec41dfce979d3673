package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsForDemographic_Deterministic(t *testing.T) {
	first := ParamsForDemographic(DemographicGenZ)
	second := ParamsForDemographic(DemographicGenZ)
	assert.Equal(t, first, second, "presets must be field-for-field identical across calls")
}

func TestParamsForDemographic_SeniorPreset(t *testing.T) {
	params := ParamsForDemographic(DemographicSenior)

	assert.Equal(t, PersonalityPlanner, params.PersonalityType)
	assert.Equal(t, 0.3, params.RiskTolerance)
	assert.Equal(t, 2.5, params.LossAversionStrength)
}

func TestParseDemographic_DefaultsToMillennial(t *testing.T) {
	assert.Equal(t, DemographicMillennial, ParseDemographic("unknown cohort"))
	assert.Equal(t, DemographicMillennial, ParseDemographic(""))
	assert.Equal(t, DemographicGenZ, ParseDemographic("genz"))
	assert.Equal(t, DemographicSenior, ParseDemographic("  SENIOR "))
}

func TestStressLevelFromScore_Thresholds(t *testing.T) {
	assert.Equal(t, StressMinimal, StressLevelFromScore(0.0))
	assert.Equal(t, StressMinimal, StressLevelFromScore(0.19))
	assert.Equal(t, StressLow, StressLevelFromScore(0.2))
	assert.Equal(t, StressModerate, StressLevelFromScore(0.4))
	assert.Equal(t, StressHigh, StressLevelFromScore(0.6))
	assert.Equal(t, StressExtreme, StressLevelFromScore(0.8))
	assert.Equal(t, StressExtreme, StressLevelFromScore(1.0))
}

func TestDecisionDegradation_Monotonic(t *testing.T) {
	levels := []StressLevel{StressMinimal, StressLow, StressModerate, StressHigh, StressExtreme}
	for i := 1; i < len(levels); i++ {
		assert.GreaterOrEqual(t,
			levels[i-1].DecisionDegradation(),
			levels[i].DecisionDegradation(),
			"degradation must not improve as stress rises")
	}
	assert.Equal(t, 1.0, StressMinimal.DecisionDegradation())
}

func TestBiasPenalty_CappedAndComponents(t *testing.T) {
	p := NewProfile()
	p.LossAversionStrength = 4.0
	p.PresentBiasBeta = 0.3
	p.OptimismBias = OptimismHigh
	p.AnchoringSusceptibility = 1.0

	assert.Equal(t, 0.40, p.BiasPenalty(), "worst case penalty is capped")

	// A fully debiased profile has zero penalty
	p2 := NewProfile()
	p2.LossAversionStrength = 2.0
	p2.PresentBiasBeta = 1.0
	p2.OptimismBias = OptimismModerate
	p2.AnchoringSusceptibility = 0.0
	assert.Equal(t, 0.0, p2.BiasPenalty())
}

func TestDecisionEffectiveness_DegradesWithStress(t *testing.T) {
	p := NewProfileFromParameters(ParamsForDemographic(DemographicMidcareer))

	calm := p.DecisionEffectiveness(StressMinimal, 1.0)
	stressed := p.DecisionEffectiveness(StressExtreme, 1.0)

	assert.Greater(t, calm, stressed)
	assert.GreaterOrEqual(t, calm, 0.0)
	assert.LessOrEqual(t, calm, 1.0)
	assert.GreaterOrEqual(t, stressed, 0.0)
}

func TestDecisionEffectiveness_ContextQuality(t *testing.T) {
	p := NewProfileFromParameters(ParamsForDemographic(DemographicMillennial))

	full := p.DecisionEffectiveness(StressLow, 1.0)
	half := p.DecisionEffectiveness(StressLow, 0.5)

	assert.InDelta(t, full*0.5, half, 1e-9, "context quality scales multiplicatively")
}

func TestAdjustForDemographic_Mutates(t *testing.T) {
	p := NewProfile()
	p.AdjustForDemographic(DemographicSenior)

	assert.Equal(t, DemographicSenior, p.Demographic)
	assert.Equal(t, PersonalityPlanner, p.Personality)
	assert.Equal(t, 2.5, p.LossAversionStrength)
}

func TestClone_Independent(t *testing.T) {
	p := NewProfile()
	clone := p.Clone()
	clone.FinancialLiteracy = 0.99

	assert.NotEqual(t, p.FinancialLiteracy, clone.FinancialLiteracy)
}
