package enhancer

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/moneypath/behavioral/internal/modules/social"
	"github.com/moneypath/behavioral/pkg/formulas"
)

const (
	// Per-trial scatter around the scenario adjustment factor.
	biasFactorNoiseSigma = 0.05

	// Social pressure shifts decisions multiplicatively; full pressure moves
	// a factor by at most this much.
	socialPressureWeight = 0.20
	socialFactorJitter   = 0.05
)

// ApplyCognitiveBiasesToDecisions returns a per-trial multiplicative
// adjustment-factor array for the given scenario. The factors are centered on
// the profile's scenario x demographic bias adjustment and scattered per
// trial; callers apply them to decision quantities, not outcome arrays.
func (e *Enhancer) ApplyCognitiveBiasesToDecisions(trials int, scenario string) []float64 {
	center := e.Biases.AdjustmentFactor(scenario, e.Params.Demographic)
	noise := distuv.Normal{Mu: 0, Sigma: biasFactorNoiseSigma, Src: e.src}

	factors := make([]float64, trials)
	for i := range factors {
		factors[i] = formulas.Clamp(center+noise.Rand(), 0.1, 1.5)
	}
	return factors
}

// SocialInfluenceAdjustments returns a per-trial multiplicative factor array
// from the combined social pressure score. Pressure below 0.5 nudges factors
// above 1.0 (supportive environment), above 0.5 pulls them under.
func (e *Enhancer) SocialInfluenceAdjustments(trials int, in social.PressureInputs) []float64 {
	pressure := e.Social.SocialFinancialPressure(in)
	center := 1.0 + (0.5-pressure)*socialPressureWeight
	jitter := distuv.Uniform{Min: -socialFactorJitter, Max: socialFactorJitter, Src: e.src}

	factors := make([]float64, trials)
	for i := range factors {
		factors[i] = formulas.Clamp(center+jitter.Rand(), 0.5, 1.5)
	}
	return factors
}
