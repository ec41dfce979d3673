package social

import (
	"strings"

	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// CULTURAL DEBT ATTITUDE
// =============================================================================
// Willingness to take on debt varies by debt type and cultural frame. Existing
// burden suppresses acceptance, genuine necessity overrides reluctance, and
// the decision leaves shame and stress residue either way.

// DebtType labels the purpose of a prospective debt.
type DebtType string

const (
	DebtMortgage   DebtType = "mortgage"
	DebtEducation  DebtType = "education"
	DebtAuto       DebtType = "auto"
	DebtCreditCard DebtType = "credit_card"
	DebtPersonal   DebtType = "personal"
	DebtMedical    DebtType = "medical"
)

// Base acceptance rates per debt type. Productive debt is broadly acceptable,
// consumption debt is not.
var debtAcceptanceBase = map[DebtType]float64{
	DebtMortgage:   0.85,
	DebtEducation:  0.75,
	DebtAuto:       0.60,
	DebtMedical:    0.55,
	DebtPersonal:   0.35,
	DebtCreditCard: 0.30,
}

// Attitude multipliers on the base acceptance rate.
var attitudeAcceptanceFactor = map[profile.DebtAttitude]float64{
	profile.DebtAttitudeAverse:    0.6,
	profile.DebtAttitudeTolerant:  1.0,
	profile.DebtAttitudeStrategic: 1.1,
}

const (
	burdenSuppression = 0.5
	necessityBoost    = 0.30
	debtShameResidue  = 0.6
	debtStressResidue = 0.4
)

// ParseDebtType normalizes a debt-type label, defaulting to personal.
func ParseDebtType(s string) DebtType {
	switch DebtType(strings.ToLower(strings.TrimSpace(s))) {
	case DebtMortgage:
		return DebtMortgage
	case DebtEducation:
		return DebtEducation
	case DebtAuto:
		return DebtAuto
	case DebtCreditCard:
		return DebtCreditCard
	case DebtMedical:
		return DebtMedical
	default:
		return DebtPersonal
	}
}

// DebtDecision is the outcome of one debt-acceptance evaluation.
type DebtDecision struct {
	Accept      bool    `json:"accept"`
	Probability float64 `json:"probability"`
	Shame       float64 `json:"shame"`
	Stress      float64 `json:"stress"`
}

// CulturalDebtAttitude decides whether an individual takes on new debt.
type CulturalDebtAttitude struct {
	Attitude  profile.DebtAttitude
	Culture   profile.CulturalBackground
	DebtShame float64

	rng *rand.Rand
}

// NewCulturalDebtAttitude builds the model from profile parameters, rolling
// accept decisions from src.
func NewCulturalDebtAttitude(params profile.Parameters, src rand.Source) *CulturalDebtAttitude {
	return &CulturalDebtAttitude{
		Attitude:  params.DebtAttitude,
		Culture:   params.CulturalBackground,
		DebtShame: params.DebtShameLevel,
		rng:       rand.New(src),
	}
}

// AcceptProbability returns the deterministic probability of accepting the
// debt given the existing burden (debt-to-income) and how necessary the
// purchase is.
func (c *CulturalDebtAttitude) AcceptProbability(debtType DebtType, existingBurden, necessity float64) float64 {
	base, ok := debtAcceptanceBase[debtType]
	if !ok {
		base = debtAcceptanceBase[DebtPersonal]
	}

	factor, ok := attitudeAcceptanceFactor[c.Attitude]
	if !ok {
		factor = 1.0
	}

	p := base * factor
	p *= 1.0 - burdenSuppression*formulas.Clamp01(existingBurden)
	p += necessityBoost * formulas.Clamp01(necessity)

	return formulas.Clamp01(p)
}

// WillTakeDebt rolls the acceptance decision and reports the shame and stress
// it produces. Taking debt one is culturally averse to carries the full shame
// residue; declining needed debt still stresses.
func (c *CulturalDebtAttitude) WillTakeDebt(debtType DebtType, existingBurden, necessity float64) DebtDecision {
	p := c.AcceptProbability(debtType, existingBurden, necessity)
	accept := c.rng.Float64() < p

	shame := 0.0
	stress := 0.0
	if accept {
		shame = c.DebtShame * debtShameResidue
		stress = formulas.Clamp01(existingBurden) * debtStressResidue
	} else if necessity > 0.5 {
		stress = formulas.Clamp01(necessity) * debtStressResidue
	}

	return DebtDecision{
		Accept:      accept,
		Probability: p,
		Shame:       shame,
		Stress:      stress,
	}
}
