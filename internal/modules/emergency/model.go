package emergency

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// EMERGENCY BEHAVIOR MODEL
// =============================================================================
// Composes the stress curve, the reduction pattern and the safety net into
// trajectory-level behavior: how much an individual actually cuts, when they
// ask for help, and how long their savings last.

const (
	// MaxTotalReduction caps the total expense cut; nobody reduces more than
	// half of total spending no matter how long the crisis runs.
	MaxTotalReduction = 0.5

	// Crisis phase multipliers on the category-weighted reduction.
	shockPhaseMultiplier    = 0.5 // Month 1: shock and denial
	activePhaseMultiplier   = 0.9 // Months 2-3: active cutting
	survivalPhaseMultiplier = 1.1 // Month 4+: survival mode

	// Help-seeking threshold parameters
	helpBaseThresholdMonths = 2.0
)

// Network-strength multipliers on the help-seeking threshold.
var networkThresholdMultiplier = map[profile.SocialNetworkStrength]float64{
	profile.NetworkStrong:   0.8,
	profile.NetworkModerate: 1.0,
	profile.NetworkWeak:     1.3,
}

// Personality multipliers on the help-seeking threshold: panickers ask early,
// avoiders hold out.
var helpPersonalityMultiplier = map[profile.Personality]float64{
	profile.PersonalityPlanner:   1.1,
	profile.PersonalityAvoider:   0.7,
	profile.PersonalitySurvivor:  1.0,
	profile.PersonalityPanicker:  1.4,
	profile.PersonalityOptimizer: 1.2,
}

// HelpEvent records one successful external help ask during a simulation.
type HelpEvent struct {
	Month        int        `json:"month"`
	Source       HelpSource `json:"source"`
	AmountMonths float64    `json:"amount_months"`
}

// SimulationResult is the outcome of one emergency trajectory.
type SimulationResult struct {
	FinalSavings    float64     `json:"final_savings"`
	MonthsSurvived  int         `json:"months_survived"`
	SurvivedFull    bool        `json:"survived_full_duration"`
	HelpReceived    []HelpEvent `json:"help_received"`
	ExpenseTimeline []float64   `json:"expense_timeline"`
	StressTimeline  []float64   `json:"stress_timeline"`
	AvgReduction    float64     `json:"avg_reduction"`
}

// Model is the emergency behavior model for one simulated individual.
// The per-call methods are read-only over the model; SimulateEmergencyResponse
// carries single-trajectory state internally and must not run concurrently on
// the same instance.
type Model struct {
	curve     *StressResponseCurve
	pattern   *ReductionPattern
	safetyNet *SafetyNet

	personality profile.Personality
	demographic profile.Demographic
	network     profile.SocialNetworkStrength

	log zerolog.Logger
}

// NewModel creates an emergency behavior model parameterized from profile
// parameters, drawing randomness from the given source.
func NewModel(params profile.Parameters, src rand.Source, log zerolog.Logger) *Model {
	return &Model{
		curve:       NewStressResponseCurve(),
		pattern:     NewReductionPattern(),
		safetyNet:   NewSafetyNet(params.Demographic, src),
		personality: params.PersonalityType,
		demographic: params.Demographic,
		network:     params.SocialNetwork,
		log:         log.With().Str("component", "emergency_behavior").Logger(),
	}
}

// Curve exposes the stress response curve for callers that need decision
// quality directly.
func (m *Model) Curve() *StressResponseCurve {
	return m.curve
}

// ExpenseReduction returns the total expense reduction fraction achieved after
// monthsUnemployed months, in [0, 0.5].
//
// When an expense breakdown is supplied (name -> monthly amount), the
// per-category reduction timeline is weighted by each category's share of
// total spend; names map to canonical categories by substring (unmatched names
// count as shopping). Without a breakdown, the typical distribution is used.
// A crisis-phase multiplier is applied on top: shock (month 1), active cutting
// (months 2-3), survival mode (month 4+).
func (m *Model) ExpenseReduction(
	monthsUnemployed int,
	personality profile.Personality,
	expenseBreakdown map[string]float64,
) float64 {
	timeline := m.pattern.ReductionTimeline(float64(monthsUnemployed), personality, DefaultInitialStress)

	var weighted float64
	if len(expenseBreakdown) > 0 {
		total := 0.0
		for _, amount := range expenseBreakdown {
			total += amount
		}
		if total <= 0 {
			return 0.0
		}
		for name, amount := range expenseBreakdown {
			cat := MapCategory(name)
			weighted += (amount / total) * timeline[cat]
		}
	} else {
		for cat, share := range TypicalDistribution {
			weighted += share * timeline[cat]
		}
	}

	// Phase multiplier
	switch {
	case monthsUnemployed <= 1:
		weighted *= shockPhaseMultiplier
	case monthsUnemployed <= 3:
		weighted *= activePhaseMultiplier
	default:
		weighted *= survivalPhaseMultiplier
	}

	return math.Min(weighted, MaxTotalReduction)
}

// HelpSeekingThreshold returns the months until external help is needed, given
// the current savings ratio (months of expenses). Returns 0 when help is
// needed now.
func (m *Model) HelpSeekingThreshold(
	savingsRatio float64,
	network profile.SocialNetworkStrength,
	demographic profile.Demographic,
) int {
	networkMult, ok := networkThresholdMultiplier[network]
	if !ok {
		networkMult = 1.0
	}
	personalityMult, ok := helpPersonalityMultiplier[m.personality]
	if !ok {
		personalityMult = 1.0
	}

	threshold := helpBaseThresholdMonths * networkMult * personalityMult
	if savingsRatio <= threshold {
		return 0
	}
	return int(math.Ceil(savingsRatio - threshold))
}

// stressFromSavingsRatio maps months of runway to a 0-1 stress score.
// Six months of runway is near-calm, zero runway is near-panic.
func stressFromSavingsRatio(ratio float64) float64 {
	return formulas.Clamp(1.0-ratio/6.0, 0.05, 0.95)
}

// SimulateEmergencyResponse runs a month-by-month emergency trajectory.
//
// Each month: stress is recomputed from the savings ratio, that month's
// reduction is applied to expenses, help seeking is optionally rolled (each
// source at most once), and savings are drawn down. Stops early when savings
// are exhausted.
func (m *Model) SimulateEmergencyResponse(
	initialSavings float64,
	monthlyExpenses float64,
	emergencyDuration int,
	demographic profile.Demographic,
	includeHelp bool,
) (*SimulationResult, error) {
	if monthlyExpenses <= 0 {
		return nil, fmt.Errorf("monthly expenses must be positive, got %.2f", monthlyExpenses)
	}
	if emergencyDuration <= 0 {
		return nil, fmt.Errorf("emergency duration must be positive, got %d", emergencyDuration)
	}

	savings := initialSavings
	result := &SimulationResult{
		HelpReceived:    []HelpEvent{},
		ExpenseTimeline: make([]float64, 0, emergencyDuration),
		StressTimeline:  make([]float64, 0, emergencyDuration),
	}

	var alreadySought []HelpSource
	var reductionSum float64
	monthsSurvived := 0

	for month := 1; month <= emergencyDuration; month++ {
		savingsRatio := savings / monthlyExpenses
		stress := stressFromSavingsRatio(savingsRatio)

		reduction := m.ExpenseReduction(month, m.personality, nil)
		reductionSum += reduction
		adjustedExpenses := monthlyExpenses * (1.0 - reduction)

		if includeHelp {
			monthsRemaining := savings / adjustedExpenses
			source, amountMonths := m.safetyNet.DetermineHelpSeeking(monthsRemaining, alreadySought, stress)
			if source != "" {
				alreadySought = append(alreadySought, source)
				savings += amountMonths * monthlyExpenses
				result.HelpReceived = append(result.HelpReceived, HelpEvent{
					Month:        month,
					Source:       source,
					AmountMonths: amountMonths,
				})
				m.log.Debug().
					Int("month", month).
					Str("source", string(source)).
					Float64("amount_months", amountMonths).
					Msg("External help received")
			}
		}

		savings -= adjustedExpenses
		result.ExpenseTimeline = append(result.ExpenseTimeline, adjustedExpenses)
		result.StressTimeline = append(result.StressTimeline, stress)

		if savings <= 0 {
			monthsSurvived = month
			break
		}
		monthsSurvived = month
	}

	result.FinalSavings = savings
	result.MonthsSurvived = monthsSurvived
	result.SurvivedFull = savings > 0 && monthsSurvived == emergencyDuration
	if n := len(result.ExpenseTimeline); n > 0 {
		result.AvgReduction = reductionSum / float64(n)
	}

	return result, nil
}
