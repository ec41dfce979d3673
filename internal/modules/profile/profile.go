package profile

import (
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// DECISION EFFECTIVENESS WEIGHTS
// =============================================================================
// Effectiveness is the fraction of a decision that is made "rationally"; the
// remainder is driven by the behavioral score. Competence traits are blended
// first, then degraded multiplicatively by stress, context and biases.

const (
	// Competence blend weights (must sum to 1.0)
	EffectivenessWeightLiteracy    = 0.40 // Knowing what the right move is
	EffectivenessWeightSelfControl = 0.35 // Executing it under temptation
	EffectivenessWeightFuture      = 0.25 // Caring about the long-term payoff

	// Bias penalty scaling
	BiasPenaltyLossAversion = 0.10 // Per unit of lambda above 2.0
	BiasPenaltyPresentBias  = 0.30 // Per unit of beta below 1.0
	BiasPenaltyOptimismHigh = 0.08 // Flat penalty for high optimism
	BiasPenaltyAnchoring    = 0.10 // Scaled by anchoring susceptibility

	// Maximum combined bias penalty (effectiveness multiplier floor 1 - max)
	maxBiasPenalty = 0.40
)

// Profile is the long-lived psychological state of one simulated individual.
// It is the only mutable entity in the engine: demographic adjustment and
// adaptive learning nudge its numeric fields in place across a trajectory.
// A Profile must not be shared across concurrently simulated individuals.
type Profile struct {
	RiskTolerance           float64
	FinancialLiteracy       float64
	SelfControl             float64
	FutureOrientation       float64
	LossAversionStrength    float64
	PresentBiasBeta         float64
	OptimismBias            OptimismLevel
	AnchoringSusceptibility float64

	SpendingPersonality SpendingPersonality
	DebtAttitude        DebtAttitude
	InvestmentStyle     InvestmentStyle

	PeerInfluenceSusceptibility float64
	StatusConsciousness         float64

	Personality Personality
	Demographic Demographic
}

// NewProfile returns a profile with neutral defaults (pre-demographic adjustment).
func NewProfile() *Profile {
	return &Profile{
		RiskTolerance:               0.5,
		FinancialLiteracy:           0.5,
		SelfControl:                 0.5,
		FutureOrientation:           0.5,
		LossAversionStrength:        formulas.DefaultLossAversion,
		PresentBiasBeta:             formulas.DefaultPresentBiasBeta,
		OptimismBias:                OptimismModerate,
		AnchoringSusceptibility:     0.5,
		SpendingPersonality:         SpendingBalanced,
		DebtAttitude:                DebtAttitudeTolerant,
		InvestmentStyle:             InvestmentModerate,
		PeerInfluenceSusceptibility: 0.5,
		StatusConsciousness:         0.5,
		Personality:                 PersonalitySurvivor,
		Demographic:                 DemographicMillennial,
	}
}

// NewProfileFromParameters seeds a profile from a flattened parameter set.
func NewProfileFromParameters(params Parameters) *Profile {
	return &Profile{
		RiskTolerance:               params.RiskTolerance,
		FinancialLiteracy:           params.FinancialLiteracy,
		SelfControl:                 params.SelfControl,
		FutureOrientation:           params.FutureOrientation,
		LossAversionStrength:        params.LossAversionStrength,
		PresentBiasBeta:             params.PresentBiasBeta,
		OptimismBias:                params.OptimismBias,
		AnchoringSusceptibility:     params.AnchoringSusceptibility,
		SpendingPersonality:         params.SpendingPersonality,
		DebtAttitude:                params.DebtAttitude,
		InvestmentStyle:             params.InvestmentStyle,
		PeerInfluenceSusceptibility: params.PeerInfluenceSusceptibility,
		StatusConsciousness:         params.StatusConsciousness,
		Personality:                 params.PersonalityType,
		Demographic:                 params.Demographic,
	}
}

// AdjustForDemographic mutates the profile toward the preset of the given
// cohort. Used when a default profile is specialized after construction.
func (p *Profile) AdjustForDemographic(d Demographic) {
	params := ParamsForDemographic(d)
	p.RiskTolerance = params.RiskTolerance
	p.FinancialLiteracy = params.FinancialLiteracy
	p.SelfControl = params.SelfControl
	p.FutureOrientation = params.FutureOrientation
	p.LossAversionStrength = params.LossAversionStrength
	p.PresentBiasBeta = params.PresentBiasBeta
	p.OptimismBias = params.OptimismBias
	p.AnchoringSusceptibility = params.AnchoringSusceptibility
	p.SpendingPersonality = params.SpendingPersonality
	p.DebtAttitude = params.DebtAttitude
	p.InvestmentStyle = params.InvestmentStyle
	p.PeerInfluenceSusceptibility = params.PeerInfluenceSusceptibility
	p.StatusConsciousness = params.StatusConsciousness
	p.Personality = params.PersonalityType
	p.Demographic = d
}

// Clone returns an independent copy of the profile. Used for trajectory
// snapshots in behavior-evolution simulations.
func (p *Profile) Clone() *Profile {
	clone := *p
	return &clone
}

// BiasPenalty computes the combined decision penalty from the profile's
// cognitive biases: loss aversion above the 2.0 baseline, present-bias deficit
// below beta=1, high optimism, and anchoring susceptibility. Capped so that
// biases alone cannot zero out effectiveness.
func (p *Profile) BiasPenalty() float64 {
	penalty := 0.0

	if p.LossAversionStrength > 2.0 {
		penalty += (p.LossAversionStrength - 2.0) * BiasPenaltyLossAversion
	}
	penalty += (1.0 - p.PresentBiasBeta) * BiasPenaltyPresentBias
	if p.OptimismBias == OptimismHigh {
		penalty += BiasPenaltyOptimismHigh
	}
	penalty += p.AnchoringSusceptibility * BiasPenaltyAnchoring

	return formulas.Clamp(penalty, 0.0, maxBiasPenalty)
}

// DecisionEffectiveness returns the fraction of a decision driven by rational
// evaluation, in [0, 1]. Competence blend, degraded multiplicatively by the
// stress level, the decision context quality multiplier, and the bias penalty.
func (p *Profile) DecisionEffectiveness(level StressLevel, contextQuality float64) float64 {
	competence := p.FinancialLiteracy*EffectivenessWeightLiteracy +
		p.SelfControl*EffectivenessWeightSelfControl +
		p.FutureOrientation*EffectivenessWeightFuture

	effectiveness := competence *
		level.DecisionDegradation() *
		formulas.Clamp01(contextQuality) *
		(1.0 - p.BiasPenalty())

	return formulas.Clamp01(effectiveness)
}
