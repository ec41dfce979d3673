package decision

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/moneypath/behavioral/internal/modules/profile"
)

// =============================================================================
// DECISION FRAMEWORK
// =============================================================================
// The framework blends a rational option evaluation with a behavioral one.
// The blend weight is the profile's decision effectiveness under the current
// stress level and context; the remainder leaks through the biased scoring.
// Per-option Gaussian noise widens as effectiveness falls.

const (
	// Rational scoring weights over the option's financial fields.
	rationalReturnWeight    = 0.30
	rationalRiskWeight      = 0.20
	rationalLiquidityWeight = 0.10
	rationalDebtWeight      = 0.20

	// Behavioral adjustments.
	lossAversionScorePenalty = 0.10 // per unit of lambda above 1.0, per unit of loss
	peerInfluenceBoost       = 0.15
	noiseSigmaScale          = 0.10

	// Decision quality classification thresholds on effectiveness.
	qualityOptimal    = 0.8
	qualityGood       = 0.6
	qualitySuboptimal = 0.4
	qualityPoor       = 0.2

	// Bias-detection rule thresholds.
	lossAversionBiasLambda = 2.2
	presentBiasBeta        = 0.7
	anchoringBiasThreshold = 0.6
	herdingBiasThreshold   = 0.6
)

// Partial risk offset from optimism: optimists discount stated risk.
var optimismRiskOffset = map[profile.OptimismLevel]float64{
	profile.OptimismLow:      0.05,
	profile.OptimismModerate: 0.15,
	profile.OptimismHigh:     0.30,
}

// Option is one candidate in a financial decision. Zero-valued fields simply
// contribute nothing to the score.
type Option struct {
	Name            string  `json:"name"`
	ExpectedReturn  float64 `json:"expected_return"`
	RiskLevel       float64 `json:"risk_level"`
	LiquidityImpact float64 `json:"liquidity_impact"`
	DebtReduction   float64 `json:"debt_reduction"`
	PotentialLoss   float64 `json:"potential_loss"`
	FutureBenefit   bool    `json:"future_benefit"`
	SociallyPopular bool    `json:"socially_popular"`
}

// Reasoning explains one decision for downstream reporting.
type Reasoning struct {
	Chosen          string              `json:"chosen"`
	RationalBest    string              `json:"rational_best"`
	Effectiveness   float64             `json:"effectiveness"`
	StressLevel     profile.StressLevel `json:"stress_level"`
	DecisionQuality string              `json:"decision_quality"`
	ActiveBiases    []string            `json:"active_biases"`
}

// Record is one entry in the framework's append-only decision history.
type Record struct {
	Timestamp    time.Time `json:"timestamp"`
	DecisionType string    `json:"decision_type"`
	Chosen       string    `json:"chosen"`
	Reasoning    Reasoning `json:"reasoning"`
}

// Framework drives stress-aware decisions for one simulated individual. The
// decision history is append-only and unbounded; one Framework instance models
// one trajectory and must not be shared across concurrent individuals.
type Framework struct {
	Profile            *profile.Profile
	CurrentStressLevel profile.StressLevel
	History            []Record

	adaptive *AdaptiveBehaviorModel
	src      rand.Source
	log      zerolog.Logger
}

// NewFramework builds a decision framework around one profile. All noise draws
// come from src.
func NewFramework(p *profile.Profile, src rand.Source, log zerolog.Logger) *Framework {
	return &Framework{
		Profile:            p,
		CurrentStressLevel: profile.StressMinimal,
		History:            []Record{},
		adaptive:           NewAdaptiveBehaviorModel(),
		src:                src,
		log:                log.With().Str("component", "decision_framework").Logger(),
	}
}

// rationalScore is the textbook additive evaluation of one option.
func rationalScore(opt Option) float64 {
	return opt.ExpectedReturn*rationalReturnWeight -
		opt.RiskLevel*rationalRiskWeight -
		opt.LiquidityImpact*rationalLiquidityWeight +
		opt.DebtReduction*rationalDebtWeight
}

// behavioralScore bends the rational score through the profile's biases.
func (f *Framework) behavioralScore(opt Option, rational float64) float64 {
	score := rational

	if opt.PotentialLoss > 0 && f.Profile.LossAversionStrength > 1.0 {
		score -= (f.Profile.LossAversionStrength - 1.0) * lossAversionScorePenalty * opt.PotentialLoss
	}
	if opt.FutureBenefit {
		score *= f.Profile.PresentBiasBeta
	}
	if opt.RiskLevel > 0 {
		score += opt.RiskLevel * optimismRiskOffset[f.Profile.OptimismBias]
	}
	if opt.SociallyPopular {
		score += f.Profile.PeerInfluenceSusceptibility * peerInfluenceBoost
	}

	return score
}

// classifyQuality maps effectiveness to the five-band quality label.
func classifyQuality(effectiveness float64) string {
	switch {
	case effectiveness >= qualityOptimal:
		return "optimal"
	case effectiveness >= qualityGood:
		return "good"
	case effectiveness >= qualitySuboptimal:
		return "suboptimal"
	case effectiveness >= qualityPoor:
		return "poor"
	default:
		return "panic"
	}
}

// activeBiases runs the rule checks identifying which biases plausibly shaped
// this decision.
func (f *Framework) activeBiases(decisionType string, options []Option, level profile.StressLevel) []string {
	biases := []string{}

	anyLoss := false
	anyFuture := false
	anyPopular := false
	for _, opt := range options {
		anyLoss = anyLoss || opt.PotentialLoss > 0
		anyFuture = anyFuture || opt.FutureBenefit
		anyPopular = anyPopular || opt.SociallyPopular
	}

	if anyLoss && f.Profile.LossAversionStrength > lossAversionBiasLambda {
		biases = append(biases, "loss_aversion")
	}
	if f.Profile.PresentBiasBeta < presentBiasBeta && (anyFuture || decisionType == "saving") {
		biases = append(biases, "present_bias")
	}
	if f.Profile.OptimismBias == profile.OptimismHigh && decisionType == "investment" {
		biases = append(biases, "optimism_bias")
	}
	if f.Profile.AnchoringSusceptibility > anchoringBiasThreshold &&
		(decisionType == "negotiation" || decisionType == "purchase") {
		biases = append(biases, "anchoring")
	}
	if anyPopular && f.Profile.PeerInfluenceSusceptibility > herdingBiasThreshold {
		biases = append(biases, "herding")
	}
	if level >= profile.StressHigh {
		biases = append(biases, "stress_impairment")
	}

	return biases
}

// MakeFinancialDecision evaluates the options under the current financial
// metrics and context, picks the argmax of the noised blended scores, and
// appends the decision to the history.
func (f *Framework) MakeFinancialDecision(
	decisionType string,
	options []Option,
	ctx Context,
	metrics Metrics,
) (Option, Reasoning, error) {
	if len(options) == 0 {
		return Option{}, Reasoning{}, fmt.Errorf("no options to decide between")
	}

	stress := StressScoreFromMetrics(metrics)
	f.CurrentStressLevel = profile.StressLevelFromScore(stress.Overall())

	effectiveness := f.Profile.DecisionEffectiveness(f.CurrentStressLevel, ctx.QualityMultiplier())
	noise := distuv.Normal{Mu: 0, Sigma: noiseSigmaScale * (1.0 - effectiveness), Src: f.src}

	bestIdx := 0
	bestScore := 0.0
	rationalBestIdx := 0
	rationalBestScore := 0.0
	for i, opt := range options {
		rational := rationalScore(opt)
		behavioral := f.behavioralScore(opt, rational)

		final := rational*effectiveness + behavioral*(1.0-effectiveness)
		if noise.Sigma > 0 {
			final += noise.Rand()
		}

		if i == 0 || final > bestScore {
			bestIdx = i
			bestScore = final
		}
		if i == 0 || rational > rationalBestScore {
			rationalBestIdx = i
			rationalBestScore = rational
		}
	}

	chosen := options[bestIdx]
	reasoning := Reasoning{
		Chosen:          chosen.Name,
		RationalBest:    options[rationalBestIdx].Name,
		Effectiveness:   effectiveness,
		StressLevel:     f.CurrentStressLevel,
		DecisionQuality: classifyQuality(effectiveness),
		ActiveBiases:    f.activeBiases(decisionType, options, f.CurrentStressLevel),
	}

	f.History = append(f.History, Record{
		Timestamp:    time.Now(),
		DecisionType: decisionType,
		Chosen:       chosen.Name,
		Reasoning:    reasoning,
	})

	f.log.Debug().
		Str("type", decisionType).
		Str("chosen", chosen.Name).
		Str("quality", reasoning.DecisionQuality).
		Float64("effectiveness", effectiveness).
		Msg("financial decision made")

	return chosen, reasoning, nil
}

// SimulateBehaviorEvolution advances the framework's profile through the
// adaptive model, returning the monthly snapshot timeline.
func (f *Framework) SimulateBehaviorEvolution(months int, experiences map[int]Experience) []*profile.Profile {
	return f.adaptive.SimulateBehaviorEvolution(f.Profile, months, experiences)
}
