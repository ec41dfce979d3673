package formulas

import "math"

// DefaultPresentBiasBeta is the default quasi-hyperbolic present-bias parameter.
// beta = 1.0 means no present bias; lower values discount all future periods
// by an extra constant factor.
const DefaultPresentBiasBeta = 0.7

// DefaultMonthlyDelta is the default per-month exponential discount factor.
const DefaultMonthlyDelta = 0.96

// QuasiHyperbolicDiscount calculates the present value of a future amount using
// beta-delta (quasi-hyperbolic) discounting: V = beta * delta^t * amount.
//
// The beta factor applies only to future periods (t > 0), which is what produces
// the characteristic present-bias kink: "now" is special, everything later is
// uniformly devalued on top of the exponential decay.
//
// Args:
//   - amount: The future amount
//   - months: Delay in months (t)
//   - beta: Present-bias factor (0 < beta <= 1)
//   - delta: Per-month exponential discount factor (0 < delta <= 1)
//
// Returns:
//   - Present value of the amount
func QuasiHyperbolicDiscount(amount, months, beta, delta float64) float64 {
	if months <= 0 {
		return amount
	}
	return beta * math.Pow(delta, months) * amount
}

// ExponentialDiscount calculates the rational (time-consistent) present value:
// V = delta^t * amount. Used as the counterfactual against the biased value.
func ExponentialDiscount(amount, months, delta float64) float64 {
	if months <= 0 {
		return amount
	}
	return math.Pow(delta, months) * amount
}
