package social

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// Combined pressure weights (must sum to 1.0).
const (
	familyPressureWeight   = 0.40
	peerPressureWeight     = 0.40
	culturalPressureWeight = 0.20
)

// PressureInputs are the situational inputs to the combined pressure score.
type PressureInputs struct {
	MonthlyIncome     float64
	PeerMedianIncome  float64
	VisibleCategories []string
	StressLevel       float64
	ExistingDebtRatio float64
}

// Factors composes the family, peer, cultural and generational sub-models
// into one social-influence surface for the enhancer.
type Factors struct {
	Family       *FamilySupportModel
	Peers        *PeerInfluenceCalculator
	DebtAttitude *CulturalDebtAttitude
	Generation   *GenerationalBehavior

	log zerolog.Logger
}

// NewFactors builds all social sub-models from one parameter set, seeding
// stochastic draws from src.
func NewFactors(params profile.Parameters, src rand.Source, log zerolog.Logger) *Factors {
	return &Factors{
		Family:       NewFamilySupportModel(params, src),
		Peers:        NewPeerInfluenceCalculator(params, src),
		DebtAttitude: NewCulturalDebtAttitude(params, src),
		Generation:   NewGenerationalBehavior(params.Demographic),
		log:          log.With().Str("component", "social_factors").Logger(),
	}
}

// SocialFinancialPressure combines family obligations, peer spending pressure
// and cultural debt load into one 0-1 pressure score, weighted 40/40/20.
func (f *Factors) SocialFinancialPressure(in PressureInputs) float64 {
	familyPressure := 0.0
	if in.MonthlyIncome > 0 {
		familyPressure = formulas.Clamp01(
			f.Family.FinancialObligations(in.MonthlyIncome) / in.MonthlyIncome * 5.0)
	}

	peerPressure := f.Peers.SpendingPressure(in.MonthlyIncome, in.PeerMedianIncome, in.VisibleCategories)

	culturalPressure := formulas.Clamp01(
		f.DebtAttitude.DebtShame * formulas.Clamp01(in.ExistingDebtRatio))

	total := familyPressure*familyPressureWeight +
		peerPressure*peerPressureWeight +
		culturalPressure*culturalPressureWeight

	return formulas.Clamp01(total)
}
