package social

import (
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// FAMILY SUPPORT
// =============================================================================
// Family is both a drain (obligations flow outward in family-centered
// cultures) and a safety net (help flows inward when shame allows asking).

// Fraction of income expected to flow to family, by cultural background.
var familyObligationRate = map[profile.CulturalBackground]float64{
	profile.CultureIndividualist:  0.02,
	profile.CultureCollectivist:   0.10,
	profile.CultureFamilyCentered: 0.15,
}

const (
	// Obligations scale with how strongly the individual expects family
	// financial interdependence.
	obligationExpectationWeight = 0.5

	// Help-asking probability shape.
	helpBaseProbability = 0.30
	helpStressWeight    = 0.40
	helpShameWeight     = 0.50
)

// FamilySupportModel computes family money flows for one individual.
type FamilySupportModel struct {
	Culture                  profile.CulturalBackground
	FamilySupportExpectation float64
	DebtShame                float64

	rng *rand.Rand
}

// NewFamilySupportModel builds the model from profile parameters, rolling
// stochastic help decisions from src.
func NewFamilySupportModel(params profile.Parameters, src rand.Source) *FamilySupportModel {
	return &FamilySupportModel{
		Culture:                  params.CulturalBackground,
		FamilySupportExpectation: params.FamilySupportExpectation,
		DebtShame:                params.DebtShameLevel,
		rng:                      rand.New(src),
	}
}

// FinancialObligations returns the monthly amount expected to flow to family,
// driven by cultural background and personal expectation of interdependence.
func (m *FamilySupportModel) FinancialObligations(monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	rate, ok := familyObligationRate[m.Culture]
	if !ok {
		rate = familyObligationRate[profile.CultureIndividualist]
	}
	scale := obligationExpectationWeight + obligationExpectationWeight*m.FamilySupportExpectation
	return monthlyIncome * rate * scale
}

// HelpProbability returns the deterministic probability of asking family for
// help under the given stress. Interdependent cultures and expectation raise
// it; shame suppresses it.
func (m *FamilySupportModel) HelpProbability(stressLevel float64) float64 {
	p := helpBaseProbability
	p += helpStressWeight * formulas.Clamp01(stressLevel)
	p += 0.2 * m.FamilySupportExpectation
	if m.Culture != profile.CultureIndividualist {
		p += 0.1
	}
	p -= helpShameWeight * m.DebtShame
	return formulas.Clamp01(p)
}

// WillSeekFamilyHelp rolls the help-asking decision.
func (m *FamilySupportModel) WillSeekFamilyHelp(stressLevel float64) bool {
	return m.rng.Float64() < m.HelpProbability(stressLevel)
}
