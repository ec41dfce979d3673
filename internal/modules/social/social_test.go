package social

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
)

func TestFinancialObligations_CultureDriven(t *testing.T) {
	individualist := NewFamilySupportModel(profile.Parameters{
		CulturalBackground:       profile.CultureIndividualist,
		FamilySupportExpectation: 1.0,
	}, rand.NewSource(1))
	familyCentered := NewFamilySupportModel(profile.Parameters{
		CulturalBackground:       profile.CultureFamilyCentered,
		FamilySupportExpectation: 1.0,
	}, rand.NewSource(1))

	// Full expectation gives the full cultural rate: 2% vs 15% of income.
	assert.InDelta(t, 100.0, individualist.FinancialObligations(5000), 1e-9)
	assert.InDelta(t, 750.0, familyCentered.FinancialObligations(5000), 1e-9)

	assert.Equal(t, 0.0, individualist.FinancialObligations(0))
	assert.Equal(t, 0.0, individualist.FinancialObligations(-100))
}

func TestHelpProbability_ShameSuppresses(t *testing.T) {
	open := NewFamilySupportModel(profile.Parameters{
		CulturalBackground: profile.CultureCollectivist,
		DebtShameLevel:     0.0,
	}, rand.NewSource(1))
	ashamed := NewFamilySupportModel(profile.Parameters{
		CulturalBackground: profile.CultureCollectivist,
		DebtShameLevel:     1.0,
	}, rand.NewSource(1))

	assert.Greater(t, open.HelpProbability(0.8), ashamed.HelpProbability(0.8))
	assert.Greater(t, open.HelpProbability(0.9), open.HelpProbability(0.1),
		"stress pushes people to ask")

	for _, stress := range []float64{0.0, 0.5, 1.0} {
		p := ashamed.HelpProbability(stress)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestSpendingPressure(t *testing.T) {
	calc := NewPeerInfluenceCalculator(profile.ParamsForDemographic(profile.DemographicGenZ), rand.NewSource(1))

	visible := []string{"dining_out", "shopping"}

	below := calc.SpendingPressure(3000, 6000, visible)
	at := calc.SpendingPressure(6000, 6000, visible)
	assert.Greater(t, below, at, "earning below peers raises pressure")

	for _, p := range []float64{below, at} {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}

	assert.Equal(t, 0.0, calc.SpendingPressure(3000, 0, visible), "no peer group means no pressure")
}

func TestSpendingPressure_CohortDecay(t *testing.T) {
	params := profile.Parameters{
		PeerInfluenceSusceptibility: 0.8,
		StatusConsciousness:         0.6,
	}
	params.Demographic = profile.DemographicGenZ
	genz := NewPeerInfluenceCalculator(params, rand.NewSource(1))
	params.Demographic = profile.DemographicSenior
	senior := NewPeerInfluenceCalculator(params, rand.NewSource(1))

	visible := []string{"shopping"}
	assert.Greater(t, genz.SpendingPressure(4000, 6000, visible), senior.SpendingPressure(4000, 6000, visible),
		"peer susceptibility falls with age")
}

func TestInvestmentHerding(t *testing.T) {
	calc := NewPeerInfluenceCalculator(profile.ParamsForDemographic(profile.DemographicGenZ), rand.NewSource(1))

	unpopular := calc.InvestmentHerding(0.0, 0.7)
	popular := calc.InvestmentHerding(1.0, 0.7)

	assert.Greater(t, popular.FollowProbability, unpopular.FollowProbability)
	assert.GreaterOrEqual(t, unpopular.FollowProbability, 0.15,
		"even unpopular choices keep the base follow rate")
	assert.LessOrEqual(t, popular.FollowProbability, 1.0)

	// GenZ risk tolerance 0.7 matches the 0.7 risk choice: no mismatch stress.
	assert.Equal(t, 0.0, popular.MismatchStress)

	conservative := NewPeerInfluenceCalculator(profile.ParamsForDemographic(profile.DemographicSenior), rand.NewSource(1))
	mismatch := conservative.InvestmentHerding(1.0, 0.9)
	assert.Greater(t, mismatch.MismatchStress, 0.0,
		"risk far beyond tolerance stresses whether or not they follow")
}

func TestAcceptProbability_DebtHierarchy(t *testing.T) {
	c := NewCulturalDebtAttitude(profile.Parameters{DebtAttitude: profile.DebtAttitudeTolerant}, rand.NewSource(1))

	mortgage := c.AcceptProbability(DebtMortgage, 0, 0)
	creditCard := c.AcceptProbability(DebtCreditCard, 0, 0)
	assert.Greater(t, mortgage, creditCard, "productive debt is broadly acceptable, consumption debt is not")
	assert.InDelta(t, 0.85, mortgage, 1e-9)
	assert.InDelta(t, 0.30, creditCard, 1e-9)
}

func TestAcceptProbability_BurdenAndNecessity(t *testing.T) {
	c := NewCulturalDebtAttitude(profile.Parameters{DebtAttitude: profile.DebtAttitudeAverse}, rand.NewSource(1))

	unburdened := c.AcceptProbability(DebtAuto, 0.0, 0.0)
	burdened := c.AcceptProbability(DebtAuto, 1.0, 0.0)
	assert.InDelta(t, unburdened/2.0, burdened, 1e-9, "full burden halves acceptance")

	necessary := c.AcceptProbability(DebtMedical, 0.5, 1.0)
	optional := c.AcceptProbability(DebtMedical, 0.5, 0.0)
	assert.InDelta(t, optional+0.30, necessary, 1e-9, "necessity overrides reluctance")
}

func TestWillTakeDebt_Residues(t *testing.T) {
	c := NewCulturalDebtAttitude(profile.Parameters{
		DebtAttitude:   profile.DebtAttitudeTolerant,
		DebtShameLevel: 0.8,
	}, rand.NewSource(3))

	// Mortgage at zero burden and full necessity: probability clamps to 1,
	// so acceptance is certain.
	decision := c.WillTakeDebt(DebtMortgage, 0.0, 1.0)
	assert.True(t, decision.Accept)
	assert.InDelta(t, 0.48, decision.Shame, 1e-9, "accepting carries the shame residue")
	assert.Equal(t, 0.0, decision.Stress, "no existing burden means no stress residue")
}

func TestParseDebtType(t *testing.T) {
	assert.Equal(t, DebtMortgage, ParseDebtType(" Mortgage "))
	assert.Equal(t, DebtPersonal, ParseDebtType("payday"))
}

func TestPredictFinancialBehavior(t *testing.T) {
	genz := NewGenerationalBehavior(profile.DemographicGenZ)
	senior := NewGenerationalBehavior(profile.DemographicSenior)

	assert.Greater(t, genz.PredictFinancialBehavior("fintech_adoption").Likelihood,
		senior.PredictFinancialBehavior("fintech_adoption").Likelihood)
	assert.Greater(t, senior.PredictFinancialBehavior("retirement_saving").Likelihood,
		genz.PredictFinancialBehavior("retirement_saving").Likelihood)

	assert.Equal(t, "defers ownership", genz.PredictFinancialBehavior("home_purchase").Tendency)
	assert.Equal(t, "stays put", senior.PredictFinancialBehavior("job_change").Tendency)

	unknown := genz.PredictFinancialBehavior("lottery")
	assert.Equal(t, 0.5, unknown.Likelihood)
	assert.Equal(t, "neutral", unknown.Tendency)
	assert.NotEmpty(t, unknown.FormativeExperiences)
}

func TestSocialFinancialPressure(t *testing.T) {
	factors := NewFactors(profile.ParamsForDemographic(profile.DemographicGenZ), rand.NewSource(1), zerolog.Nop())

	heavy := factors.SocialFinancialPressure(PressureInputs{
		MonthlyIncome:     3000,
		PeerMedianIncome:  6000,
		VisibleCategories: []string{"dining_out", "shopping", "entertainment"},
		StressLevel:       0.8,
		ExistingDebtRatio: 1.0,
	})
	light := factors.SocialFinancialPressure(PressureInputs{
		MonthlyIncome:    8000,
		PeerMedianIncome: 6000,
	})

	assert.Greater(t, heavy, light)
	for _, p := range []float64{heavy, light} {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}
