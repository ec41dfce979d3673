package enhancer

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/biases"
	"github.com/moneypath/behavioral/internal/modules/decision"
	"github.com/moneypath/behavioral/internal/modules/emergency"
	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/internal/modules/social"
	"github.com/moneypath/behavioral/internal/modules/studentloan"
)

// =============================================================================
// MONTE CARLO ENHANCER
// =============================================================================
// The enhancer is the integration surface: it takes raw per-trial outcome
// arrays from the simulation engine and reshapes them through the behavioral
// sub-models. Batch enhancement reads profile state but never mutates
// trajectory state, so trials stay independent.

// RandomFactors carries per-trial random inputs aligned by index with the
// outcome array. Missing arrays are treated as zeros.
type RandomFactors struct {
	IncomeVolatility []float64 `json:"income_volatility"`
}

// volatility returns the trial's income volatility, zero when absent.
func (f RandomFactors) volatility(i int) float64 {
	if i < 0 || i >= len(f.IncomeVolatility) {
		return 0
	}
	return f.IncomeVolatility[i]
}

// Enhancer owns one parameterized instance of every behavioral sub-model, all
// seeded from a single injected random source.
type Enhancer struct {
	Params  profile.Parameters
	Profile *profile.Profile

	Emergency *emergency.Model
	Loans     *studentloan.Model
	Biases    *biases.Model
	Social    *social.Factors
	Decisions *decision.Framework

	src rand.Source
	rng *rand.Rand
	log zerolog.Logger
}

// New builds an enhancer from an explicit parameter set. Every sub-model draws
// from src, so one seed reproduces the full batch.
func New(params profile.Parameters, src rand.Source, log zerolog.Logger) *Enhancer {
	prof := profile.NewProfileFromParameters(params)
	return &Enhancer{
		Params:    params,
		Profile:   prof,
		Emergency: emergency.NewModel(params, src, log),
		Loans:     studentloan.NewModel(params, src, log),
		Biases:    biases.NewModel(params, src),
		Social:    social.NewFactors(params, src, log),
		Decisions: decision.NewFramework(prof, src, log),
		src:       src,
		rng:       rand.New(src),
		log:       log.With().Str("component", "enhancer").Logger(),
	}
}

// NewForDemographic builds an enhancer from a demographic label using that
// cohort's fixed parameter preset.
func NewForDemographic(demographic string, src rand.Source, log zerolog.Logger) *Enhancer {
	return New(profile.ParamsForDemographic(profile.ParseDemographic(demographic)), src, log)
}
