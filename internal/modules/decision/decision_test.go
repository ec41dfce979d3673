package decision

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
)

func TestOverall_WeightedSum(t *testing.T) {
	score := StressScore{Debt: 1, Liquidity: 1, Uncertainty: 1, Emergency: 1, Social: 1}
	assert.InDelta(t, 1.0, score.Overall(), 1e-9, "weights sum to 1")

	partial := StressScore{Liquidity: 1.0}
	assert.InDelta(t, 0.30, partial.Overall(), 1e-9)

	assert.Equal(t, 0.0, StressScore{}.Overall())
}

func TestStressScoreFromMetrics_Components(t *testing.T) {
	calm := StressScoreFromMetrics(Metrics{
		DebtToIncome:         0.0,
		EmergencyFundMonths:  12.0,
		IncomeVolatility:     0.0,
		ExpenseCoverageRatio: 2.0,
		SocialPressure:       0.0,
	})
	assert.Less(t, calm.Overall(), 0.05)

	crisis := StressScoreFromMetrics(Metrics{
		DebtToIncome:         2.5,
		EmergencyFundMonths:  0.0,
		IncomeVolatility:     0.6,
		ExpenseCoverageRatio: 0.5,
		SocialPressure:       0.9,
	})
	assert.Equal(t, 1.0, crisis.Debt, "DTI past saturation is maximal debt stress")
	assert.Equal(t, 1.0, crisis.Liquidity, "empty fund is maximal liquidity stress")
	assert.Equal(t, 1.0, crisis.Uncertainty)
	assert.InDelta(t, 1.0, crisis.Emergency, 1e-9, "half coverage means deep emergency stress")
	assert.Greater(t, crisis.Overall(), 0.9)
}

func TestDebtStress_Piecewise(t *testing.T) {
	low := StressScoreFromMetrics(Metrics{DebtToIncome: 0.4}).Debt
	mid := StressScoreFromMetrics(Metrics{DebtToIncome: 0.8}).Debt
	high := StressScoreFromMetrics(Metrics{DebtToIncome: 1.5}).Debt

	assert.InDelta(t, 0.16, low, 1e-9, "low ratios barely register")
	assert.InDelta(t, 0.44, mid, 1e-9)
	assert.InDelta(t, 0.80, high, 1e-9, "above 1.0 accelerates toward saturation")
}

func TestQualityMultiplier(t *testing.T) {
	ideal := Context{
		InformationCompleteness: 1.0,
		EmotionalState:          EmotionNeutral,
	}
	assert.InDelta(t, 1.0, ideal.QualityMultiplier(), 1e-9)

	rushed := Context{
		TimePressure:            1.0,
		InformationCompleteness: 1.0,
		EmotionalState:          EmotionNeutral,
	}
	assert.InDelta(t, 0.70, rushed.QualityMultiplier(), 1e-9)

	blind := Context{
		InformationCompleteness: 0.0,
		EmotionalState:          EmotionNeutral,
	}
	assert.InDelta(t, 0.75, blind.QualityMultiplier(), 1e-9)

	worst := Context{
		TimePressure:            1.0,
		InformationCompleteness: 0.0,
		SocialInfluence:         1.0,
		EmotionalState:          EmotionEuphoric,
		RecentOutcomes:          []Outcome{OutcomeLoss, OutcomeLoss, OutcomeLoss},
	}
	assert.Equal(t, 0.2, worst.QualityMultiplier(), "floor holds under every penalty at once")
}

func TestQualityMultiplier_StreakBias(t *testing.T) {
	base := Context{InformationCompleteness: 1.0, EmotionalState: EmotionNeutral}

	shortRun := base
	shortRun.RecentOutcomes = []Outcome{OutcomeLoss, OutcomeLoss}
	assert.InDelta(t, 1.0, shortRun.QualityMultiplier(), 1e-9, "two in a row is not a streak")

	lossStreak := base
	lossStreak.RecentOutcomes = []Outcome{OutcomeWin, OutcomeLoss, OutcomeLoss, OutcomeLoss}
	assert.InDelta(t, 0.90, lossStreak.QualityMultiplier(), 1e-9)

	winStreak := base
	winStreak.RecentOutcomes = []Outcome{OutcomeWin, OutcomeWin, OutcomeWin}
	assert.InDelta(t, 0.95, winStreak.QualityMultiplier(), 1e-9, "win streaks breed overconfidence")
}

func TestParseEmotionalState(t *testing.T) {
	assert.Equal(t, EmotionAnxious, ParseEmotionalState(" ANXIOUS "))
	assert.Equal(t, EmotionNeutral, ParseEmotionalState("confused"))
}

func TestRecordExperience_Nudges(t *testing.T) {
	m := NewAdaptiveBehaviorModel()

	p := profile.NewProfile()
	before := p.RiskTolerance
	m.RecordExperience(p, "investment", "positive", 1.0)
	assert.InDelta(t, before+0.05, p.RiskTolerance, 1e-9, "a winning investment emboldens")

	p2 := profile.NewProfile()
	m.RecordExperience(p2, "investment", "negative", 1.0)
	assert.InDelta(t, before-0.075, p2.RiskTolerance, 1e-9, "losses teach louder than wins")
	assert.Greater(t, p2.LossAversionStrength, profile.NewProfile().LossAversionStrength)

	p3 := profile.NewProfile()
	m.RecordExperience(p3, "saving", "positive", 0.5)
	assert.InDelta(t, 0.525, p3.SelfControl, 1e-9)
}

func TestRecordExperience_Bounds(t *testing.T) {
	m := NewAdaptiveBehaviorModel()
	p := profile.NewProfile()

	for i := 0; i < 200; i++ {
		m.RecordExperience(p, "investment", "negative", 1.0)
	}
	assert.GreaterOrEqual(t, p.RiskTolerance, 0.0)
	assert.LessOrEqual(t, p.LossAversionStrength, 4.0, "lambda is capped")

	for i := 0; i < 200; i++ {
		m.RecordExperience(p, "investment", "positive", 1.0)
	}
	assert.LessOrEqual(t, p.RiskTolerance, 1.0)
}

func TestEvolveMonth_BetaDriftsTowardTarget(t *testing.T) {
	m := NewAdaptiveBehaviorModel()

	p := profile.NewProfile()
	p.PresentBiasBeta = 0.5
	for i := 0; i < 600; i++ {
		m.EvolveMonth(p)
	}
	assert.InDelta(t, 0.9, p.PresentBiasBeta, 0.01, "beta converges to 0.9 over decades")
	assert.Greater(t, p.FinancialLiteracy, 0.5, "literacy creeps upward")
	assert.LessOrEqual(t, p.FinancialLiteracy, 1.0)
}

func TestSimulateBehaviorEvolution_Timeline(t *testing.T) {
	m := NewAdaptiveBehaviorModel()
	p := profile.NewProfile()

	timeline := m.SimulateBehaviorEvolution(p, 12, map[int]Experience{
		6: {DecisionType: "investment", Outcome: "negative", Magnitude: 1.0},
	})

	assert.Len(t, timeline, 12)
	assert.Less(t, timeline[5].RiskTolerance, timeline[4].RiskTolerance,
		"the month-6 loss shows up in the month-6 snapshot")
	// Snapshots are independent clones, not aliases of the live profile.
	timeline[0].FinancialLiteracy = 0.0
	assert.NotEqual(t, 0.0, p.FinancialLiteracy)
}

func TestMakeFinancialDecision_EmptyOptions(t *testing.T) {
	f := NewFramework(profile.NewProfile(), rand.NewSource(1), zerolog.Nop())

	_, _, err := f.MakeFinancialDecision("investment", nil, Context{}, Metrics{})
	assert.Error(t, err)
}

func TestMakeFinancialDecision_DominantOption(t *testing.T) {
	p := profile.NewProfileFromParameters(profile.ParamsForDemographic(profile.DemographicSenior))
	f := NewFramework(p, rand.NewSource(5), zerolog.Nop())

	options := []Option{
		{Name: "hoard_cash", ExpectedReturn: 0.0, RiskLevel: 0.0},
		{Name: "pay_down_debt", ExpectedReturn: 0.5, DebtReduction: 3.0},
	}
	calm := Metrics{EmergencyFundMonths: 12, ExpenseCoverageRatio: 2.0}
	ctx := Context{InformationCompleteness: 1.0, EmotionalState: EmotionNeutral}

	chosen, reasoning, err := f.MakeFinancialDecision("debt", options, ctx, calm)
	assert.NoError(t, err)
	assert.Equal(t, "pay_down_debt", chosen.Name, "a strictly dominant option survives the noise")
	assert.Equal(t, "pay_down_debt", reasoning.RationalBest)
	assert.Len(t, f.History, 1)
	assert.Equal(t, "debt", f.History[0].DecisionType)
}

func TestMakeFinancialDecision_StressAndBiases(t *testing.T) {
	p := profile.NewProfile()
	p.LossAversionStrength = 3.0
	p.PresentBiasBeta = 0.5
	p.PeerInfluenceSusceptibility = 0.9
	f := NewFramework(p, rand.NewSource(2), zerolog.Nop())

	crisis := Metrics{
		DebtToIncome:         2.0,
		EmergencyFundMonths:  0.0,
		IncomeVolatility:     0.5,
		ExpenseCoverageRatio: 0.6,
		SocialPressure:       0.8,
	}
	options := []Option{
		{Name: "a", PotentialLoss: 1.0, FutureBenefit: true, SociallyPopular: true},
		{Name: "b", ExpectedReturn: 0.2},
	}

	_, reasoning, err := f.MakeFinancialDecision("saving", options, Context{InformationCompleteness: 0.5}, crisis)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, reasoning.StressLevel, profile.StressHigh)
	assert.Contains(t, reasoning.ActiveBiases, "loss_aversion")
	assert.Contains(t, reasoning.ActiveBiases, "present_bias")
	assert.Contains(t, reasoning.ActiveBiases, "herding")
	assert.Contains(t, reasoning.ActiveBiases, "stress_impairment")
	assert.NotEmpty(t, reasoning.DecisionQuality)
}
