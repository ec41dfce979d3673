package social

import (
	"strings"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// GENERATIONAL BEHAVIOR
// =============================================================================
// Cohorts carry formative economic experiences that shape scenario-level
// tendencies. The trait tables are fixed; predictions are deterministic
// lookups blended with the individual traits.

// cohortTraits are the fixed per-cohort tendency scores, each 0-1.
type cohortTraits struct {
	institutionalTrust float64
	digitalAdoption    float64
	jobStability       float64
	homeOwnershipDrive float64
	retirementFocus    float64
}

var generationTraits = map[profile.Demographic]cohortTraits{
	profile.DemographicGenZ: {
		institutionalTrust: 0.35,
		digitalAdoption:    0.95,
		jobStability:       0.30,
		homeOwnershipDrive: 0.40,
		retirementFocus:    0.25,
	},
	profile.DemographicMillennial: {
		institutionalTrust: 0.40,
		digitalAdoption:    0.85,
		jobStability:       0.45,
		homeOwnershipDrive: 0.65,
		retirementFocus:    0.45,
	},
	profile.DemographicMidcareer: {
		institutionalTrust: 0.55,
		digitalAdoption:    0.65,
		jobStability:       0.65,
		homeOwnershipDrive: 0.80,
		retirementFocus:    0.70,
	},
	profile.DemographicSenior: {
		institutionalTrust: 0.70,
		digitalAdoption:    0.40,
		jobStability:       0.80,
		homeOwnershipDrive: 0.85,
		retirementFocus:    0.95,
	},
}

var formativeExperiences = map[profile.Demographic][]string{
	profile.DemographicGenZ:       {"pandemic economy", "gig work normalization", "housing unaffordability"},
	profile.DemographicMillennial: {"2008 financial crisis", "student debt expansion", "delayed homeownership"},
	profile.DemographicMidcareer:  {"dot-com bust", "housing bubble", "401k transition"},
	profile.DemographicSenior:     {"stagflation era", "pension decline", "market cycles"},
}

// Prediction is one scenario-keyed behavioral prediction for a cohort.
type Prediction struct {
	Scenario             string   `json:"scenario"`
	Likelihood           float64  `json:"likelihood"`
	Tendency             string   `json:"tendency"`
	FormativeExperiences []string `json:"formative_experiences"`
}

// GenerationalBehavior predicts scenario tendencies from cohort tables.
type GenerationalBehavior struct {
	Demographic profile.Demographic
}

// NewGenerationalBehavior builds a predictor for one cohort.
func NewGenerationalBehavior(d profile.Demographic) *GenerationalBehavior {
	return &GenerationalBehavior{Demographic: d}
}

// Traits exposes the cohort's fixed tendency scores for blending by callers.
func (g *GenerationalBehavior) Traits() (institutionalTrust, digitalAdoption, retirementFocus float64) {
	t, ok := generationTraits[g.Demographic]
	if !ok {
		t = generationTraits[profile.DemographicMillennial]
	}
	return t.institutionalTrust, t.digitalAdoption, t.retirementFocus
}

// PredictFinancialBehavior returns the cohort's likelihood and tendency label
// for a named scenario. Unknown scenarios get a neutral prediction.
func (g *GenerationalBehavior) PredictFinancialBehavior(scenario string) Prediction {
	t, ok := generationTraits[g.Demographic]
	if !ok {
		t = generationTraits[profile.DemographicMillennial]
	}

	pred := Prediction{
		Scenario:             scenario,
		Likelihood:           0.5,
		Tendency:             "neutral",
		FormativeExperiences: formativeExperiences[g.Demographic],
	}

	switch strings.ToLower(strings.TrimSpace(scenario)) {
	case "home_purchase":
		pred.Likelihood = t.homeOwnershipDrive
		pred.Tendency = "prioritizes ownership"
		if t.homeOwnershipDrive < 0.5 {
			pred.Tendency = "defers ownership"
		}
	case "retirement_saving":
		pred.Likelihood = t.retirementFocus
		pred.Tendency = "saves consistently"
		if t.retirementFocus < 0.5 {
			pred.Tendency = "defers retirement saving"
		}
	case "fintech_adoption":
		pred.Likelihood = t.digitalAdoption
		pred.Tendency = "adopts digital tools"
		if t.digitalAdoption < 0.5 {
			pred.Tendency = "prefers traditional channels"
		}
	case "institutional_investing":
		pred.Likelihood = t.institutionalTrust
		pred.Tendency = "trusts institutions"
		if t.institutionalTrust < 0.5 {
			pred.Tendency = "self-directs"
		}
	case "job_change":
		pred.Likelihood = formulas.Clamp01(1.0 - t.jobStability)
		pred.Tendency = "mobile"
		if t.jobStability > 0.6 {
			pred.Tendency = "stays put"
		}
	}

	return pred
}
