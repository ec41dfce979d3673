package enhancer

import (
	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// Bias-identification thresholds on profile fields.
const (
	reportLossAversionThreshold = 2.2
	reportPresentBiasThreshold  = 0.7
	reportAnchoringThreshold    = 0.6

	// Behavioral score blend weights (score is 0-100).
	scoreLiteracyWeight    = 0.30
	scoreSelfControlWeight = 0.30
	scoreFutureWeight      = 0.20
	scoreBiasWeight        = 0.20
)

// Report is the JSON-serializable behavioral summary for one profile,
// intended for narrative layers downstream.
type Report struct {
	Demographic          string   `json:"demographic"`
	Personality          string   `json:"personality"`
	PrimaryBiases        []string `json:"primary_biases"`
	Recommendations      []string `json:"recommendations"`
	MitigationStrategies []string `json:"mitigation_strategies"`
	BehavioralScore      float64  `json:"behavioral_score"`
}

// BehavioralReport summarizes the profile's dominant biases with matched
// recommendations and a single 0-100 behavioral score.
func (e *Enhancer) BehavioralReport() Report {
	report := Report{
		Demographic:          string(e.Params.Demographic),
		Personality:          string(e.Params.PersonalityType),
		PrimaryBiases:        []string{},
		Recommendations:      []string{},
		MitigationStrategies: []string{},
	}

	if e.Params.LossAversionStrength > reportLossAversionThreshold {
		report.PrimaryBiases = append(report.PrimaryBiases, "loss_aversion")
		report.Recommendations = append(report.Recommendations,
			"Frame savings targets as avoiding losses rather than capturing gains")
		report.MitigationStrategies = append(report.MitigationStrategies,
			"Automate transfers so individual loss-framed decisions never arise")
	}
	if e.Params.PresentBiasBeta < reportPresentBiasThreshold {
		report.PrimaryBiases = append(report.PrimaryBiases, "present_bias")
		report.Recommendations = append(report.Recommendations,
			"Use commitment devices with immediate small rewards for saving")
		report.MitigationStrategies = append(report.MitigationStrategies,
			"Schedule contribution increases in advance, before temptation applies")
	}
	if e.Params.OptimismBias == profile.OptimismHigh {
		report.PrimaryBiases = append(report.PrimaryBiases, "optimism_bias")
		report.Recommendations = append(report.Recommendations,
			"Run pessimistic scenarios alongside the expected case before committing")
		report.MitigationStrategies = append(report.MitigationStrategies,
			"Size emergency funds from the downside scenario, not the expected one")
	}
	if e.Params.AnchoringSusceptibility > reportAnchoringThreshold {
		report.PrimaryBiases = append(report.PrimaryBiases, "anchoring")
		report.Recommendations = append(report.Recommendations,
			"Research market benchmarks before seeing any first offer")
		report.MitigationStrategies = append(report.MitigationStrategies,
			"Write down an independent estimate before every negotiation")
	}

	score := e.Params.FinancialLiteracy*scoreLiteracyWeight +
		e.Params.SelfControl*scoreSelfControlWeight +
		e.Params.FutureOrientation*scoreFutureWeight +
		(1.0-e.Profile.BiasPenalty()/0.4)*scoreBiasWeight
	report.BehavioralScore = formulas.Clamp(score*100.0, 0, 100)

	return report
}
