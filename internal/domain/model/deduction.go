package model

import "github.com/shopspring/decimal"

// Personal income tax refund on credit interest: 13% of the interest paid,
// with the deductible interest base capped at 3,000,000.
var (
	taxRefundRate         = decimal.NewFromFloat(0.13)
	interestDeductionBase = decimal.NewFromInt(3_000_000)
)

// InterestTaxDeduction computes the income tax refund available on the
// interest of the given schedule.
func InterestTaxDeduction(schedule []Installment) decimal.Decimal {
	totalInterest := decimal.Zero
	for _, inst := range schedule {
		totalInterest = totalInterest.Add(inst.Interest)
	}
	if totalInterest.GreaterThan(interestDeductionBase) {
		totalInterest = interestDeductionBase
	}
	return roundMoney(totalInterest.Mul(taxRefundRate))
}
