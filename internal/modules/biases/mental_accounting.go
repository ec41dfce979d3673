package biases

import (
	"math"
	"strings"
)

// =============================================================================
// MENTAL ACCOUNTING
// =============================================================================
// Money is not treated as fungible: its source determines how it gets spent.

// MoneySource identifies where a sum of money came from.
type MoneySource string

const (
	SourceSalary          MoneySource = "salary"
	SourceBonus           MoneySource = "bonus"
	SourceTaxRefund       MoneySource = "tax_refund"
	SourceGift            MoneySource = "gift"
	SourceInvestmentGains MoneySource = "investment_gains"
	SourceLottery         MoneySource = "lottery"
	SourceSideHustle      MoneySource = "side_hustle"
)

// spendingPropensity is the fraction of money from each source that gets spent
// rather than saved. Fixed table; never mutated.
var spendingPropensity = map[MoneySource]float64{
	SourceSalary:          0.30,
	SourceBonus:           0.75,
	SourceTaxRefund:       0.70,
	SourceGift:            0.60,
	SourceInvestmentGains: 0.40,
	SourceLottery:         0.90,
	SourceSideHustle:      0.50,
}

// windfallSources are treated as "free money": debt repayment drops to zero.
var windfallSources = map[MoneySource]bool{
	SourceBonus:     true,
	SourceTaxRefund: true,
	SourceLottery:   true,
}

// Opportunity rates for misallocation costing.
const (
	debtAPR           = 0.18 // Forgone interest savings on unpaid debt
	emergencyFundRate = 0.05 // Opportunity cost of an unfilled emergency gap
)

// Allocation splits an amount across the four destinations.
type Allocation struct {
	DebtPayment   float64 `json:"debt_payment"`
	EmergencyFund float64 `json:"emergency_fund"`
	Savings       float64 `json:"savings"`
	Spending      float64 `json:"spending"`
}

// WindfallResult contrasts the rational and behavioral allocation of a windfall.
type WindfallResult struct {
	Rational          Allocation `json:"rational"`
	Behavioral        Allocation `json:"behavioral"`
	MisallocationCost float64    `json:"misallocation_cost"`
}

// MentalAccountingModel allocates incoming money according to its source.
// The propensity tables are fixed; the model itself is stateless.
type MentalAccountingModel struct{}

// NewMentalAccountingModel creates a mental accounting model.
func NewMentalAccountingModel() *MentalAccountingModel {
	return &MentalAccountingModel{}
}

// ParseMoneySource maps a free-form label to a MoneySource, defaulting to bonus
// (the archetypal windfall).
func ParseMoneySource(s string) MoneySource {
	switch MoneySource(strings.ToLower(strings.TrimSpace(s))) {
	case SourceSalary:
		return SourceSalary
	case SourceTaxRefund:
		return SourceTaxRefund
	case SourceGift:
		return SourceGift
	case SourceInvestmentGains:
		return SourceInvestmentGains
	case SourceLottery:
		return SourceLottery
	case SourceSideHustle:
		return SourceSideHustle
	default:
		return SourceBonus
	}
}

// AllocateWindfall returns both the rational allocation (debt first, then the
// emergency gap, then 80/20 savings/spending) and the behavioral allocation
// driven by the source's spending propensity (windfall sources never touch
// debt), plus the annualized cost of the behavioral deviation.
func (m *MentalAccountingModel) AllocateWindfall(
	amount float64,
	source MoneySource,
	currentDebt float64,
	emergencyFundGap float64,
) WindfallResult {
	if amount <= 0 {
		return WindfallResult{}
	}

	// Rational: highest-return use first.
	rational := Allocation{}
	remaining := amount
	rational.DebtPayment = math.Min(remaining, math.Max(currentDebt, 0))
	remaining -= rational.DebtPayment
	rational.EmergencyFund = math.Min(remaining, math.Max(emergencyFundGap, 0))
	remaining -= rational.EmergencyFund
	rational.Savings = remaining * 0.8
	rational.Spending = remaining * 0.2

	// Behavioral: source-labeled mental account decides first.
	propensity, ok := spendingPropensity[source]
	if !ok {
		propensity = 0.5
	}
	behavioral := Allocation{}
	behavioral.Spending = amount * propensity
	saved := amount - behavioral.Spending

	if windfallSources[source] {
		// "Free money" never feels like it belongs to the debt account.
		behavioral.DebtPayment = 0
		behavioral.EmergencyFund = math.Min(saved, math.Max(emergencyFundGap, 0))
		behavioral.Savings = saved - behavioral.EmergencyFund
	} else {
		behavioral.DebtPayment = math.Min(saved*0.5, math.Max(currentDebt, 0))
		saved -= behavioral.DebtPayment
		behavioral.EmergencyFund = math.Min(saved, math.Max(emergencyFundGap, 0))
		behavioral.Savings = saved - behavioral.EmergencyFund
	}

	// Misallocation cost: forgone debt interest plus emergency opportunity cost.
	debtShortfall := math.Max(rational.DebtPayment-behavioral.DebtPayment, 0)
	emergencyShortfall := math.Max(rational.EmergencyFund-behavioral.EmergencyFund, 0)
	cost := debtShortfall*debtAPR + emergencyShortfall*emergencyFundRate

	return WindfallResult{
		Rational:          rational,
		Behavioral:        behavioral,
		MisallocationCost: cost,
	}
}
