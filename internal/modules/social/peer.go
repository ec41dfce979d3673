package social

import (
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// PEER INFLUENCE
// =============================================================================

// Spending categories visible to peers carry pressure; invisible ones do not.
var visibleCategoryPressure = map[string]float64{
	"dining_out":     0.8,
	"entertainment":  0.7,
	"shopping":       0.9,
	"housing":        0.6,
	"transportation": 0.5,
	"subscriptions":  0.3,
}

const (
	// Peer susceptibility falls with age; the cohort multiplier approximates
	// that curve.
	positionBelowPeersWeight = 0.5
	herdingPopularityWeight  = 0.6
	herdingBaseProbability   = 0.15
	riskMismatchThreshold    = 0.3
)

// Age-cohort multipliers on peer susceptibility.
var cohortSusceptibility = map[profile.Demographic]float64{
	profile.DemographicGenZ:       1.2,
	profile.DemographicMillennial: 1.0,
	profile.DemographicMidcareer:  0.7,
	profile.DemographicSenior:     0.4,
}

// HerdingResult is the outcome of one investment-herding evaluation.
type HerdingResult struct {
	FollowProbability float64 `json:"follow_probability"`
	Follows           bool    `json:"follows"`
	RiskMismatch      float64 `json:"risk_mismatch"`
	MismatchStress    float64 `json:"mismatch_stress"`
}

// PeerInfluenceCalculator models spending pressure and investment herding.
type PeerInfluenceCalculator struct {
	Susceptibility      float64
	StatusConsciousness float64
	RiskTolerance       float64
	Demographic         profile.Demographic

	rng *rand.Rand
}

// NewPeerInfluenceCalculator builds the calculator from profile parameters,
// rolling herding decisions from src.
func NewPeerInfluenceCalculator(params profile.Parameters, src rand.Source) *PeerInfluenceCalculator {
	return &PeerInfluenceCalculator{
		Susceptibility:      params.PeerInfluenceSusceptibility,
		StatusConsciousness: params.StatusConsciousness,
		RiskTolerance:       params.RiskTolerance,
		Demographic:         params.Demographic,
		rng:                 rand.New(src),
	}
}

// effectiveSusceptibility is the trait susceptibility scaled by cohort.
func (c *PeerInfluenceCalculator) effectiveSusceptibility() float64 {
	mult, ok := cohortSusceptibility[c.Demographic]
	if !ok {
		mult = 1.0
	}
	return formulas.Clamp01(c.Susceptibility * mult)
}

// SpendingPressure returns the 0-1 pressure to overspend given the
// individual's income relative to their peer group and the spending categories
// peers can see. Earning below peers raises pressure; status consciousness
// amplifies everything.
func (c *PeerInfluenceCalculator) SpendingPressure(ownIncome, peerMedianIncome float64, visibleCategories []string) float64 {
	if peerMedianIncome <= 0 {
		return 0
	}

	position := 0.0
	relative := ownIncome / peerMedianIncome
	if relative < 1.0 {
		position = (1.0 - relative) * positionBelowPeersWeight
	}

	categoryPressure := 0.0
	for _, cat := range visibleCategories {
		categoryPressure += visibleCategoryPressure[cat]
	}
	if n := len(visibleCategories); n > 0 {
		categoryPressure /= float64(n)
	}

	pressure := (position + categoryPressure) * c.effectiveSusceptibility()
	pressure *= 0.5 + 0.5*c.StatusConsciousness

	return formulas.Clamp01(pressure)
}

// InvestmentHerding evaluates whether the individual follows a popular peer
// investment. Popularity drives the follow probability; a conflict between the
// choice's risk and the individual's own tolerance surfaces as mismatch
// stress whether or not they follow.
func (c *PeerInfluenceCalculator) InvestmentHerding(peerPopularity, choiceRiskLevel float64) HerdingResult {
	p := herdingBaseProbability +
		herdingPopularityWeight*formulas.Clamp01(peerPopularity)*c.effectiveSusceptibility()
	p = formulas.Clamp01(p)

	mismatch := choiceRiskLevel - c.RiskTolerance
	if mismatch < 0 {
		mismatch = -mismatch
	}
	stress := 0.0
	if mismatch > riskMismatchThreshold {
		stress = formulas.Clamp01(mismatch)
	}

	return HerdingResult{
		FollowProbability: p,
		Follows:           c.rng.Float64() < p,
		RiskMismatch:      mismatch,
		MismatchStress:    stress,
	}
}
