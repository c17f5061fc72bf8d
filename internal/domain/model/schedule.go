package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// GenerateSchedule computes a payment schedule for the given outstanding
// balance. It is pure and deterministic: the same inputs always produce the
// same installments.
//
// Parameters:
//   - balance:           outstanding principal at the start of the schedule
//   - annualRatePercent: annual rate as a percentage (10 means 10%)
//   - termMonths:        number of monthly periods
//   - startDate:         due date of the first installment
//   - creditType:        annuity or differentiated
//
// For an annuity credit the total payment is fixed:
//
//	P = B*r / (1 - (1+r)^-n)
//
// For a differentiated credit the principal portion is fixed:
//
//	D = B / n
//
// Rounding each period to two digits makes the tracked balance drift away
// from the closed-form total; the last installment absorbs the residual so
// the final balance lands on exactly zero. The caller is expected to have
// validated the inputs against the credit policy bounds already.
func GenerateSchedule(
	balance decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termMonths int,
	startDate time.Time,
	creditType valueobject.CreditType,
) []Installment {
	if termMonths <= 0 || balance.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	if creditType.Equal(valueobject.CreditTypeDifferentiated) {
		return generateDifferentiated(balance, annualRatePercent, termMonths, startDate)
	}
	return generateAnnuity(balance, annualRatePercent, termMonths, startDate)
}

func generateAnnuity(
	balance decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termMonths int,
	startDate time.Time,
) []Installment {
	r := monthlyRate(annualRatePercent)

	// P = B*r / (1 - (1+r)^-n)
	var payment decimal.Decimal
	if r.IsZero() {
		payment = roundMoney(divExact(balance, decimal.NewFromInt(int64(termMonths))))
	} else {
		inv := divExact(one, powInt(one.Add(r), termMonths))
		payment = roundMoney(divExact(balance.Mul(r), one.Sub(inv)))
	}

	schedule := make([]Installment, 0, termMonths)
	remaining := balance

	for period := 1; period <= termMonths; period++ {
		interest := roundMoney(remaining.Mul(r))
		principal := payment.Sub(interest)
		amount := payment

		// Last period: fold the accumulated rounding drift into the
		// installment so the balance closes at exactly zero.
		if period == termMonths {
			principal = remaining
			amount = principal.Add(interest)
		}

		after := remaining.Sub(principal)
		schedule = append(schedule, Installment{
			Number:        period,
			DueDate:       addMonths(startDate, period-1),
			Amount:        amount,
			Interest:      interest,
			Principal:     principal,
			BalanceBefore: remaining,
			BalanceAfter:  after,
			Status:        valueobject.InstallmentStatusPending,
		})
		remaining = after
	}

	return schedule
}

func generateDifferentiated(
	balance decimal.Decimal,
	annualRatePercent decimal.Decimal,
	termMonths int,
	startDate time.Time,
) []Installment {
	r := monthlyRate(annualRatePercent)
	principalPart := roundMoney(divExact(balance, decimal.NewFromInt(int64(termMonths))))

	schedule := make([]Installment, 0, termMonths)
	remaining := balance

	for period := 1; period <= termMonths; period++ {
		interest := roundMoney(remaining.Mul(r))
		principal := principalPart
		if period == termMonths {
			// Absorb the rounding residual of the fixed principal split.
			principal = remaining
		}
		amount := principal.Add(interest)

		after := remaining.Sub(principal)
		schedule = append(schedule, Installment{
			Number:        period,
			DueDate:       addMonths(startDate, period-1),
			Amount:        amount,
			Interest:      interest,
			Principal:     principal,
			BalanceBefore: remaining,
			BalanceAfter:  after,
			Status:        valueobject.InstallmentStatusPending,
		})
		remaining = after
	}

	return schedule
}
