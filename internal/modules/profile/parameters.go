package profile

// Parameters is the flattened configuration that seeds a Profile and every
// sub-model for one simulation run. Immutable once constructed.
type Parameters struct {
	// Core numeric traits (all 0-1 unless noted)
	RiskTolerance           float64
	FinancialLiteracy       float64
	SelfControl             float64
	FutureOrientation       float64
	LossAversionStrength    float64 // prospect-theory lambda, typically 2.0-2.5
	PresentBiasBeta         float64 // quasi-hyperbolic beta, typically 0.6-0.9
	OptimismBias            OptimismLevel
	AnchoringSusceptibility float64

	// Categorical traits
	PersonalityType     Personality
	SpendingPersonality SpendingPersonality
	DebtAttitude        DebtAttitude
	InvestmentStyle     InvestmentStyle

	// Social traits
	PeerInfluenceSusceptibility float64
	StatusConsciousness         float64
	SocialNetwork               SocialNetworkStrength
	CulturalBackground          CulturalBackground
	FamilySupportExpectation    float64

	// Domain parameters
	DebtShameLevel            float64
	HelpSeekingReluctance     float64
	PlanningHorizonMonths     int
	EmergencyFundTargetMonths float64

	// Cohort
	Demographic Demographic
}

// ParamsForDemographic returns the fixed preset for a demographic cohort.
// Presets are fully deterministic: calling this twice for the same cohort yields
// field-for-field identical parameters.
func ParamsForDemographic(d Demographic) Parameters {
	switch d {
	case DemographicGenZ:
		return Parameters{
			RiskTolerance:           0.7,
			FinancialLiteracy:       0.40,
			SelfControl:             0.45,
			FutureOrientation:       0.40,
			LossAversionStrength:    2.0,
			PresentBiasBeta:         0.60,
			OptimismBias:            OptimismHigh,
			AnchoringSusceptibility: 0.70,

			PersonalityType:     PersonalityPanicker,
			SpendingPersonality: SpendingImpulsive,
			DebtAttitude:        DebtAttitudeTolerant,
			InvestmentStyle:     InvestmentAggressive,

			PeerInfluenceSusceptibility: 0.80,
			StatusConsciousness:         0.70,
			SocialNetwork:               NetworkStrong,
			CulturalBackground:          CultureIndividualist,
			FamilySupportExpectation:    0.60,

			DebtShameLevel:            0.30,
			HelpSeekingReluctance:     0.35,
			PlanningHorizonMonths:     12,
			EmergencyFundTargetMonths: 3.0,

			Demographic: DemographicGenZ,
		}
	case DemographicMidcareer:
		return Parameters{
			RiskTolerance:           0.5,
			FinancialLiteracy:       0.65,
			SelfControl:             0.65,
			FutureOrientation:       0.70,
			LossAversionStrength:    2.2,
			PresentBiasBeta:         0.80,
			OptimismBias:            OptimismModerate,
			AnchoringSusceptibility: 0.50,

			PersonalityType:     PersonalityOptimizer,
			SpendingPersonality: SpendingBalanced,
			DebtAttitude:        DebtAttitudeStrategic,
			InvestmentStyle:     InvestmentModerate,

			PeerInfluenceSusceptibility: 0.45,
			StatusConsciousness:         0.55,
			SocialNetwork:               NetworkModerate,
			CulturalBackground:          CultureIndividualist,
			FamilySupportExpectation:    0.40,

			DebtShameLevel:            0.45,
			HelpSeekingReluctance:     0.55,
			PlanningHorizonMonths:     60,
			EmergencyFundTargetMonths: 6.0,

			Demographic: DemographicMidcareer,
		}
	case DemographicSenior:
		return Parameters{
			RiskTolerance:           0.3,
			FinancialLiteracy:       0.70,
			SelfControl:             0.75,
			FutureOrientation:       0.80,
			LossAversionStrength:    2.5,
			PresentBiasBeta:         0.90,
			OptimismBias:            OptimismLow,
			AnchoringSusceptibility: 0.40,

			PersonalityType:     PersonalityPlanner,
			SpendingPersonality: SpendingFrugal,
			DebtAttitude:        DebtAttitudeAverse,
			InvestmentStyle:     InvestmentConservative,

			PeerInfluenceSusceptibility: 0.25,
			StatusConsciousness:         0.35,
			SocialNetwork:               NetworkModerate,
			CulturalBackground:          CultureFamilyCentered,
			FamilySupportExpectation:    0.30,

			DebtShameLevel:            0.65,
			HelpSeekingReluctance:     0.70,
			PlanningHorizonMonths:     120,
			EmergencyFundTargetMonths: 9.0,

			Demographic: DemographicSenior,
		}
	default: // millennial
		return Parameters{
			RiskTolerance:           0.6,
			FinancialLiteracy:       0.55,
			SelfControl:             0.55,
			FutureOrientation:       0.55,
			LossAversionStrength:    2.1,
			PresentBiasBeta:         0.70,
			OptimismBias:            OptimismModerate,
			AnchoringSusceptibility: 0.60,

			PersonalityType:     PersonalitySurvivor,
			SpendingPersonality: SpendingBalanced,
			DebtAttitude:        DebtAttitudeTolerant,
			InvestmentStyle:     InvestmentModerate,

			PeerInfluenceSusceptibility: 0.60,
			StatusConsciousness:         0.60,
			SocialNetwork:               NetworkModerate,
			CulturalBackground:          CultureIndividualist,
			FamilySupportExpectation:    0.45,

			DebtShameLevel:            0.50,
			HelpSeekingReluctance:     0.50,
			PlanningHorizonMonths:     36,
			EmergencyFundTargetMonths: 4.0,

			Demographic: DemographicMillennial,
		}
	}
}
