package decision

import (
	"strings"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// ADAPTIVE BEHAVIOR
// =============================================================================
// Profiles learn. Each recorded experience nudges the relevant traits by
// learning_rate x magnitude, and slow monthly drift models gradual debiasing
// with age: literacy and self-control creep upward, present bias decays
// toward beta = 0.9.

const (
	// DefaultLearningRate scales how hard one experience moves a trait.
	DefaultLearningRate = 0.05

	// Negative investment outcomes move risk tolerance harder than positive
	// ones move it back. Losses teach louder.
	negativeRiskFactor = 1.5

	// Monthly background drift.
	literacyDriftPerMonth    = 0.001
	selfControlDriftPerMonth = 0.0005
	betaDriftTarget          = 0.9
	betaDriftRate            = 0.01

	// Trait bounds after learning.
	lambdaFloor = 1.0
	lambdaCeil  = 4.0
	betaFloor   = 0.3
)

// Experience is one recorded decision outcome.
type Experience struct {
	DecisionType string  `json:"decision_type"` // investment, saving, debt
	Outcome      string  `json:"outcome"`       // positive, negative, neutral
	Magnitude    float64 `json:"magnitude"`     // 0-1 subjective impact
}

// AdaptiveBehaviorModel mutates one profile from its experiences. Owns no
// state itself; the profile carries the evolving traits.
type AdaptiveBehaviorModel struct {
	LearningRate float64
}

// NewAdaptiveBehaviorModel returns a model with the default learning rate.
func NewAdaptiveBehaviorModel() *AdaptiveBehaviorModel {
	return &AdaptiveBehaviorModel{LearningRate: DefaultLearningRate}
}

// RecordExperience nudges the profile's traits according to what happened.
// Investment outcomes move risk appetite and loss aversion, saving outcomes
// move self-control and future orientation, debt outcomes move literacy and
// loss aversion. Neutral outcomes still teach a little literacy.
func (m *AdaptiveBehaviorModel) RecordExperience(p *profile.Profile, decisionType, outcome string, magnitude float64) {
	step := m.LearningRate * formulas.Clamp01(magnitude)
	if step == 0 {
		return
	}

	dt := strings.ToLower(strings.TrimSpace(decisionType))
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "positive":
		switch dt {
		case "investment":
			p.RiskTolerance += step
			p.FinancialLiteracy += step * 0.5
		case "saving":
			p.SelfControl += step
			p.FutureOrientation += step * 0.5
		case "debt":
			p.FinancialLiteracy += step
			p.FutureOrientation += step * 0.5
		}
	case "negative":
		switch dt {
		case "investment":
			p.RiskTolerance -= step * negativeRiskFactor
			p.LossAversionStrength += step * 0.5
		case "saving":
			p.SelfControl -= step * 0.5
		case "debt":
			p.LossAversionStrength += step
			p.FinancialLiteracy += step * 0.5
		}
	default: // neutral
		p.FinancialLiteracy += step * 0.1
	}

	clampProfile(p)
}

// EvolveMonth applies one month of background drift to the profile.
func (m *AdaptiveBehaviorModel) EvolveMonth(p *profile.Profile) {
	p.FinancialLiteracy += literacyDriftPerMonth
	p.SelfControl += selfControlDriftPerMonth
	p.PresentBiasBeta += (betaDriftTarget - p.PresentBiasBeta) * betaDriftRate
	clampProfile(p)
}

// SimulateBehaviorEvolution drives the profile forward month by month,
// applying any supplied experience for that month, and returns a snapshot
// timeline (one clone per month, in order).
func (m *AdaptiveBehaviorModel) SimulateBehaviorEvolution(p *profile.Profile, months int, experiences map[int]Experience) []*profile.Profile {
	timeline := make([]*profile.Profile, 0, months)
	for month := 1; month <= months; month++ {
		m.EvolveMonth(p)
		if exp, ok := experiences[month]; ok {
			m.RecordExperience(p, exp.DecisionType, exp.Outcome, exp.Magnitude)
		}
		timeline = append(timeline, p.Clone())
	}
	return timeline
}

func clampProfile(p *profile.Profile) {
	p.RiskTolerance = formulas.Clamp01(p.RiskTolerance)
	p.FinancialLiteracy = formulas.Clamp01(p.FinancialLiteracy)
	p.SelfControl = formulas.Clamp01(p.SelfControl)
	p.FutureOrientation = formulas.Clamp01(p.FutureOrientation)
	p.LossAversionStrength = formulas.Clamp(p.LossAversionStrength, lambdaFloor, lambdaCeil)
	p.PresentBiasBeta = formulas.Clamp(p.PresentBiasBeta, betaFloor, 1.0)
}
