package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProspectValue_GainsAndLosses(t *testing.T) {
	// Gains are concave power utility
	gain := ProspectValue(1100, 1000, DefaultLossAversion, ProspectAlpha)
	expected := math.Pow(100, ProspectAlpha)
	assert.InDelta(t, expected, gain, 1e-9)

	// Losses are amplified by lambda
	loss := ProspectValue(900, 1000, DefaultLossAversion, ProspectAlpha)
	assert.InDelta(t, -DefaultLossAversion*math.Pow(100, ProspectAlpha), loss, 1e-9)

	// A loss hurts more than an equal gain helps
	assert.Greater(t, gain, -loss*0.5, "sanity on magnitudes")
	assert.Greater(t, math.Abs(loss), gain, "losses loom larger than gains")
}

func TestProspectValue_AtReference(t *testing.T) {
	assert.Equal(t, 0.0, ProspectValue(1000, 1000, 2.1, 0.88))
}

func TestQuasiHyperbolicDiscount_BetaOnlyForFuture(t *testing.T) {
	// At t=0 there is no beta penalty
	now := QuasiHyperbolicDiscount(1000, 0, DefaultPresentBiasBeta, DefaultMonthlyDelta)
	assert.InDelta(t, 1000.0, now, 1e-9)

	// One month out, both beta and delta apply
	oneMonth := QuasiHyperbolicDiscount(1000, 1, DefaultPresentBiasBeta, DefaultMonthlyDelta)
	assert.InDelta(t, 1000*DefaultPresentBiasBeta*DefaultMonthlyDelta, oneMonth, 1e-9)

	// Quasi-hyperbolic discounts the near future harder than exponential
	assert.Less(t, oneMonth, ExponentialDiscount(1000, 1, DefaultMonthlyDelta))
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp01(7))
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
}

func TestSigmoidProgress_Saturates(t *testing.T) {
	early := SigmoidProgress(0, 2.0, 4.0)
	mid := SigmoidProgress(2.0, 2.0, 4.0)
	late := SigmoidProgress(10.0, 2.0, 4.0)

	assert.Less(t, early, mid)
	assert.Less(t, mid, late)
	assert.InDelta(t, 0.5, mid, 1e-9, "midpoint is half progress")
	assert.Greater(t, late, 0.99)
}

func TestMeanAndFractionWhere(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	assert.InDelta(t, 2.5, Mean(xs), 1e-9)
	assert.InDelta(t, 0.5, FractionWhere(xs, func(x float64) bool { return x > 2 }), 1e-9)
	assert.Equal(t, 0.0, FractionWhere(nil, func(x float64) bool { return true }))
}
