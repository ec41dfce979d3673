package studentloan

import (
	"strings"

	"golang.org/x/exp/rand"

	"github.com/moneypath/behavioral/internal/modules/profile"
	"github.com/moneypath/behavioral/pkg/formulas"
)

// =============================================================================
// FORGIVENESS COMMITMENT
// =============================================================================
// Public Service Loan Forgiveness is a ten-year commitment. Staying committed
// is dominated by sunk-cost psychology: the more years already completed, the
// harder it is to walk away, even when a private-sector offer beats the
// forgiven balance on paper.

const (
	// PSLFRequiredYears is the qualifying-payment horizon.
	PSLFRequiredYears = 10

	// Sunk-cost factor rises linearly from 0.1 at year zero to 0.9 at seven
	// or more years completed.
	sunkCostFloor      = 0.1
	sunkCostCeiling    = 0.9
	sunkCostFullYears  = 7.0
	commitmentBase     = 0.2
	sunkCostWeight     = 0.7
	futureWeight       = 0.1
	salaryTemptWeight  = 0.3
	pursueServiceBase  = 0.6
	pursueFutureWeight = 0.2
	pursueOtherBase    = 0.05
)

// qualifyingCareers are career labels treated as PSLF-eligible employment.
var qualifyingCareers = map[string]bool{
	"public_service": true,
	"government":     true,
	"nonprofit":      true,
	"education":      true,
	"teacher":        true,
	"healthcare":     true,
}

// ForgivenessState tracks one borrower's progress through a forgiveness
// program.
type ForgivenessState struct {
	YearsInProgram     int     `json:"years_in_program"`
	CommitmentStrength float64 `json:"commitment_strength"`
	CareerSatisfaction float64 `json:"career_satisfaction"`
}

// ForgivenessCommitment models PSLF pursuit and retention.
type ForgivenessCommitment struct {
	FutureOrientation float64

	rng *rand.Rand
}

// NewForgivenessCommitment builds a forgiveness model from profile parameters,
// rolling stochastic decisions from src.
func NewForgivenessCommitment(params profile.Parameters, src rand.Source) *ForgivenessCommitment {
	return &ForgivenessCommitment{
		FutureOrientation: params.FutureOrientation,
		rng:               rand.New(src),
	}
}

// SunkCostFactor returns the commitment pull from years already completed,
// rising linearly from 0.1 to 0.9 and saturating at seven years.
func SunkCostFactor(yearsCompleted float64) float64 {
	t := formulas.Clamp01(yearsCompleted / sunkCostFullYears)
	return sunkCostFloor + (sunkCostCeiling-sunkCostFloor)*t
}

// WillPursuePSLF decides whether a borrower in the given career enrolls in
// forgiveness at all. Non-qualifying careers almost never pursue it.
func (f *ForgivenessCommitment) WillPursuePSLF(careerType string) bool {
	career := strings.ToLower(strings.TrimSpace(careerType))
	p := pursueOtherBase
	if qualifyingCareers[career] {
		p = pursueServiceBase + pursueFutureWeight*f.FutureOrientation
	}
	return f.rng.Float64() < formulas.Clamp01(p)
}

// CommitmentProbability returns the probability of staying in the program
// given years completed and the private-sector salary offer expressed as a
// ratio of current salary (1.0 = no raise). Monotonically increasing in years
// completed; salary temptation only bites above parity.
func (f *ForgivenessCommitment) CommitmentProbability(yearsCompleted, privateSalaryRatio float64) float64 {
	temptation := 0.0
	if privateSalaryRatio > 1.0 {
		temptation = (privateSalaryRatio - 1.0) * salaryTemptWeight
	}
	p := commitmentBase +
		sunkCostWeight*SunkCostFactor(yearsCompleted) +
		futureWeight*f.FutureOrientation -
		temptation
	return formulas.Clamp01(p)
}

// WillStayCommitted rolls the retention decision and records the outcome in
// state. On staying, the year counter advances and commitment strength is
// refreshed to the computed probability.
func (f *ForgivenessCommitment) WillStayCommitted(state *ForgivenessState, privateSalaryRatio float64) bool {
	p := f.CommitmentProbability(float64(state.YearsInProgram), privateSalaryRatio)
	state.CommitmentStrength = p
	if f.rng.Float64() >= p {
		return false
	}
	state.YearsInProgram++
	return true
}
