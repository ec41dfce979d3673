package biases

import (
	"golang.org/x/exp/rand"
)

// =============================================================================
// FRAMING EFFECTS
// =============================================================================
// The canonical Kahneman-Tversky reversal: the same choice framed as a gain
// produces risk aversion, framed as a loss produces risk seeking.

// Frame identifies whether options are described as gains or losses.
type Frame string

const (
	FrameGain Frame = "gain"
	FrameLoss Frame = "loss"
)

// Gamble-choice probabilities by frame.
const (
	gambleProbGainFrame = 0.25 // Risk-averse: mostly take the sure thing
	gambleProbLossFrame = 0.75 // Risk-seeking: mostly take the gamble
)

// FramingChoice records one framed decision.
type FramingChoice struct {
	Frame           Frame   `json:"frame"`
	ChoseGamble     bool    `json:"chose_gamble"`
	GambleProb      float64 `json:"gamble_probability"`
	ExpectedValue   float64 `json:"gamble_expected_value"`
	GuaranteedValue float64 `json:"guaranteed_value"`
}

// FramingEffectModel makes stochastic framed choices. Draws come from the
// injected source so callers control reproducibility.
type FramingEffectModel struct {
	rng *rand.Rand
}

// NewFramingEffectModel creates a framing model drawing from src.
func NewFramingEffectModel(src rand.Source) *FramingEffectModel {
	return &FramingEffectModel{rng: rand.New(src)}
}

// ChooseUnderFraming picks between a guaranteed amount and a gamble paying
// riskyAmount with probability riskyProb, under the given frame. Gain frames
// favor the guaranteed option, loss frames favor the gamble, independent of
// expected values (which are reported for the caller's analysis).
func (m *FramingEffectModel) ChooseUnderFraming(
	guaranteedAmount float64,
	riskyAmount float64,
	riskyProb float64,
	frame Frame,
) FramingChoice {
	gambleProb := gambleProbGainFrame
	if frame == FrameLoss {
		gambleProb = gambleProbLossFrame
	}

	return FramingChoice{
		Frame:           frame,
		ChoseGamble:     m.rng.Float64() < gambleProb,
		GambleProb:      gambleProb,
		ExpectedValue:   riskyAmount * riskyProb,
		GuaranteedValue: guaranteedAmount,
	}
}
