// Package profile defines the psychological trait model for a simulated
// individual: personality and demographic enumerations, the flattened parameter
// presets, and the mutable behavioral profile that every other module reads.
package profile

import "strings"

// Personality classifies how an individual responds to financial pressure.
// Assigned once per simulated individual; drives multipliers throughout the engine.
type Personality string

const (
	PersonalityPlanner   Personality = "planner"
	PersonalityAvoider   Personality = "avoider"
	PersonalitySurvivor  Personality = "survivor"
	PersonalityPanicker  Personality = "panicker"
	PersonalityOptimizer Personality = "optimizer"
)

// ParsePersonality maps a free-form label to a Personality, defaulting to survivor.
func ParsePersonality(s string) Personality {
	switch Personality(strings.ToLower(strings.TrimSpace(s))) {
	case PersonalityPlanner:
		return PersonalityPlanner
	case PersonalityAvoider:
		return PersonalityAvoider
	case PersonalityPanicker:
		return PersonalityPanicker
	case PersonalityOptimizer:
		return PersonalityOptimizer
	default:
		return PersonalitySurvivor
	}
}

// Demographic is the single demographic cohort type shared across the engine.
// Every component that needs demographic-dependent behavior takes this type,
// never a raw string.
type Demographic string

const (
	DemographicGenZ       Demographic = "genz"
	DemographicMillennial Demographic = "millennial"
	DemographicMidcareer  Demographic = "midcareer"
	DemographicSenior     Demographic = "senior"
)

// ParseDemographic maps a free-form label to a Demographic.
// Unknown labels default to millennial.
func ParseDemographic(s string) Demographic {
	switch Demographic(strings.ToLower(strings.TrimSpace(s))) {
	case DemographicGenZ:
		return DemographicGenZ
	case DemographicMidcareer:
		return DemographicMidcareer
	case DemographicSenior:
		return DemographicSenior
	default:
		return DemographicMillennial
	}
}

// StressLevel is the ordered classification of a continuous 0-1 stress score.
type StressLevel int

const (
	StressMinimal StressLevel = iota
	StressLow
	StressModerate
	StressHigh
	StressExtreme
)

// Stress score thresholds for level classification.
const (
	stressThresholdLow      = 0.2
	stressThresholdModerate = 0.4
	stressThresholdHigh     = 0.6
	stressThresholdExtreme  = 0.8
)

// StressLevelFromScore classifies a continuous stress score into a StressLevel.
func StressLevelFromScore(score float64) StressLevel {
	switch {
	case score < stressThresholdLow:
		return StressMinimal
	case score < stressThresholdModerate:
		return StressLow
	case score < stressThresholdHigh:
		return StressModerate
	case score < stressThresholdExtreme:
		return StressHigh
	default:
		return StressExtreme
	}
}

// String returns the level label used in metrics and reports.
func (l StressLevel) String() string {
	switch l {
	case StressMinimal:
		return "minimal"
	case StressLow:
		return "low"
	case StressModerate:
		return "moderate"
	case StressHigh:
		return "high"
	default:
		return "extreme"
	}
}

// DecisionDegradation returns the multiplicative decision-effectiveness penalty
// for this stress level. Mild stress barely degrades execution; extreme stress
// halves it.
func (l StressLevel) DecisionDegradation() float64 {
	switch l {
	case StressMinimal:
		return 1.0
	case StressLow:
		return 0.95
	case StressModerate:
		return 0.85
	case StressHigh:
		return 0.70
	default:
		return 0.50
	}
}

// DebtAttitude captures an individual's stance toward carrying debt.
type DebtAttitude string

const (
	DebtAttitudeAverse    DebtAttitude = "averse"
	DebtAttitudeTolerant  DebtAttitude = "tolerant"
	DebtAttitudeStrategic DebtAttitude = "strategic"
)

// SpendingPersonality captures habitual spending style.
type SpendingPersonality string

const (
	SpendingFrugal    SpendingPersonality = "frugal"
	SpendingBalanced  SpendingPersonality = "balanced"
	SpendingImpulsive SpendingPersonality = "impulsive"
)

// InvestmentStyle captures habitual investment behavior.
type InvestmentStyle string

const (
	InvestmentConservative InvestmentStyle = "conservative"
	InvestmentModerate     InvestmentStyle = "moderate"
	InvestmentAggressive   InvestmentStyle = "aggressive"
)

// SocialNetworkStrength classifies how much external support an individual can
// realistically draw on.
type SocialNetworkStrength string

const (
	NetworkStrong   SocialNetworkStrength = "strong"
	NetworkModerate SocialNetworkStrength = "moderate"
	NetworkWeak     SocialNetworkStrength = "weak"
)

// ParseNetworkStrength maps a free-form label to a SocialNetworkStrength,
// defaulting to moderate.
func ParseNetworkStrength(s string) SocialNetworkStrength {
	switch SocialNetworkStrength(strings.ToLower(strings.TrimSpace(s))) {
	case NetworkStrong:
		return NetworkStrong
	case NetworkWeak:
		return NetworkWeak
	default:
		return NetworkModerate
	}
}

// CulturalBackground enumerates the cultural framings the social module models.
type CulturalBackground string

const (
	CultureIndividualist  CulturalBackground = "individualist"
	CultureCollectivist   CulturalBackground = "collectivist"
	CultureFamilyCentered CulturalBackground = "family_centered"
)

// OptimismLevel is the discrete optimism-bias setting.
type OptimismLevel string

const (
	OptimismLow      OptimismLevel = "low"
	OptimismModerate OptimismLevel = "moderate"
	OptimismHigh     OptimismLevel = "high"
)
