package decision

import (
	"strings"

	"github.com/moneypath/behavioral/pkg/formulas"
)

// EmotionalState labels the decision-maker's mood at decision time.
type EmotionalState string

const (
	EmotionPositive EmotionalState = "positive"
	EmotionNeutral  EmotionalState = "neutral"
	EmotionNegative EmotionalState = "negative"
	EmotionAnxious  EmotionalState = "anxious"
	EmotionEuphoric EmotionalState = "euphoric"
)

// ParseEmotionalState normalizes an emotional-state label, defaulting to
// neutral.
func ParseEmotionalState(s string) EmotionalState {
	switch EmotionalState(strings.ToLower(strings.TrimSpace(s))) {
	case EmotionPositive:
		return EmotionPositive
	case EmotionNegative:
		return EmotionNegative
	case EmotionAnxious:
		return EmotionAnxious
	case EmotionEuphoric:
		return EmotionEuphoric
	default:
		return EmotionNeutral
	}
}

// Outcome tags the result of a recent decision.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Emotional states modulate decision quality. Extremes in either direction
// hurt; euphoria hurts more than negativity because it removes caution.
var emotionQualityMultiplier = map[EmotionalState]float64{
	EmotionPositive: 1.05,
	EmotionNeutral:  1.00,
	EmotionNegative: 0.90,
	EmotionAnxious:  0.80,
	EmotionEuphoric: 0.75,
}

const (
	timePressurePenalty    = 0.30
	incompleteInfoPenalty  = 0.25
	socialInfluencePenalty = 0.15

	// Recent-outcome streaks tilt quality: a loss streak breeds
	// overcaution, a win streak breeds overconfidence.
	streakWindow       = 5
	lossStreakPenalty  = 0.10
	winStreakPenalty   = 0.05
	minQualityMultiple = 0.2
)

// Context describes the situational frame of one decision. Ephemeral: built
// per decision and discarded.
type Context struct {
	DecisionType            string         `json:"decision_type"`
	TimePressure            float64        `json:"time_pressure"`
	InformationCompleteness float64        `json:"information_completeness"`
	SocialInfluence         float64        `json:"social_influence"`
	EmotionalState          EmotionalState `json:"emotional_state"`
	RecentOutcomes          []Outcome      `json:"recent_outcomes"`
}

// streakBias returns the quality penalty from the last few outcomes. Only an
// unbroken run counts.
func (c Context) streakBias() float64 {
	n := len(c.RecentOutcomes)
	if n == 0 {
		return 0
	}
	last := c.RecentOutcomes[n-1]
	run := 0
	for i := n - 1; i >= 0 && i > n-1-streakWindow; i-- {
		if c.RecentOutcomes[i] != last {
			break
		}
		run++
	}
	if run < 3 {
		return 0
	}
	if last == OutcomeLoss {
		return lossStreakPenalty
	}
	return winStreakPenalty
}

// QualityMultiplier derives the context's effect on decision quality in
// [minQualityMultiple, ~1.05]. Time pressure, missing information, social
// noise, emotional extremes and outcome streaks all degrade it.
func (c Context) QualityMultiplier() float64 {
	q := 1.0
	q -= formulas.Clamp01(c.TimePressure) * timePressurePenalty
	q -= (1.0 - formulas.Clamp01(c.InformationCompleteness)) * incompleteInfoPenalty
	q -= formulas.Clamp01(c.SocialInfluence) * socialInfluencePenalty
	q -= c.streakBias()

	mult, ok := emotionQualityMultiplier[c.EmotionalState]
	if !ok {
		mult = 1.0
	}
	q *= mult

	return formulas.Clamp(q, minQualityMultiple, mult)
}
