package emergency

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/moneypath/behavioral/internal/modules/profile"
)

// =============================================================================
// SOCIAL SAFETY NET
// =============================================================================
// External help sources are tried in a fixed order: closest relationships
// first, formal channels last. Each source triggers once per trajectory.

// HelpSource identifies one external help channel.
type HelpSource string

const (
	HelpFamily    HelpSource = "family"
	HelpFriends   HelpSource = "friends"
	HelpGovt      HelpSource = "government"
	HelpCommunity HelpSource = "community"
	HelpEmployer  HelpSource = "employer"
)

// helpSourceSpec describes one help source's trigger and payout characteristics.
type helpSourceSpec struct {
	source HelpSource

	// baseThreshold is the months-remaining point at which this source is
	// considered (higher = asked earlier).
	baseThreshold float64

	// availability is the probability the source actually comes through,
	// by demographic cohort.
	availability map[profile.Demographic]float64

	// amountMin/amountMax bound the uniform help amount, in months of expenses.
	amountMin float64
	amountMax float64
}

// helpSources lists the five sources in fixed declaration order.
var helpSources = []helpSourceSpec{
	{
		source:        HelpFamily,
		baseThreshold: 3.0,
		availability: map[profile.Demographic]float64{
			profile.DemographicGenZ:       0.80,
			profile.DemographicMillennial: 0.70,
			profile.DemographicMidcareer:  0.50,
			profile.DemographicSenior:     0.40,
		},
		amountMin: 1.0,
		amountMax: 3.0,
	},
	{
		source:        HelpFriends,
		baseThreshold: 2.0,
		availability: map[profile.Demographic]float64{
			profile.DemographicGenZ:       0.50,
			profile.DemographicMillennial: 0.45,
			profile.DemographicMidcareer:  0.35,
			profile.DemographicSenior:     0.30,
		},
		amountMin: 0.5,
		amountMax: 1.5,
	},
	{
		source:        HelpGovt,
		baseThreshold: 1.5,
		availability: map[profile.Demographic]float64{
			profile.DemographicGenZ:       0.50,
			profile.DemographicMillennial: 0.50,
			profile.DemographicMidcareer:  0.50,
			profile.DemographicSenior:     0.65,
		},
		amountMin: 1.0,
		amountMax: 2.0,
	},
	{
		source:        HelpCommunity,
		baseThreshold: 1.0,
		availability: map[profile.Demographic]float64{
			profile.DemographicGenZ:       0.40,
			profile.DemographicMillennial: 0.40,
			profile.DemographicMidcareer:  0.35,
			profile.DemographicSenior:     0.45,
		},
		amountMin: 0.5,
		amountMax: 1.0,
	},
	{
		source:        HelpEmployer,
		baseThreshold: 0.5,
		availability: map[profile.Demographic]float64{
			profile.DemographicGenZ:       0.30,
			profile.DemographicMillennial: 0.35,
			profile.DemographicMidcareer:  0.45,
			profile.DemographicSenior:     0.25,
		},
		amountMin: 0.5,
		amountMax: 2.0,
	},
}

// Stress inflates help thresholds by up to 50% (people ask earlier under stress).
const stressThresholdInflation = 0.5

// SafetyNet models probabilistic external help seeking. Stochastic; all draws
// come from the injected source so callers control reproducibility.
type SafetyNet struct {
	demographic profile.Demographic
	rng         *rand.Rand
	src         rand.Source
}

// NewSafetyNet creates a safety net model for a demographic cohort.
func NewSafetyNet(demographic profile.Demographic, src rand.Source) *SafetyNet {
	return &SafetyNet{
		demographic: demographic,
		rng:         rand.New(src),
		src:         src,
	}
}

// DetermineHelpSeeking returns the first help source that triggers for the
// given months of runway remaining, plus the help amount in months of expenses.
//
// Sources already in alreadySought are skipped (no repeat asks within one
// trajectory). Stress inflates each threshold by (1 + stress*0.5). A triggered
// source still has to pass its availability roll. Returns ("", 0) when no
// source comes through.
func (sn *SafetyNet) DetermineHelpSeeking(
	monthsRemaining float64,
	alreadySought []HelpSource,
	stressLevel float64,
) (HelpSource, float64) {
	sought := make(map[HelpSource]bool, len(alreadySought))
	for _, s := range alreadySought {
		sought[s] = true
	}

	for _, spec := range helpSources {
		if sought[spec.source] {
			continue
		}

		threshold := spec.baseThreshold * (1.0 + stressLevel*stressThresholdInflation)
		if monthsRemaining > threshold {
			continue
		}

		availability := spec.availability[sn.demographic]
		if sn.rng.Float64() >= availability {
			continue
		}

		amount := distuv.Uniform{Min: spec.amountMin, Max: spec.amountMax, Src: sn.src}.Rand()
		return spec.source, amount
	}

	return "", 0.0
}
