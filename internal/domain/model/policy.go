package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Decimal arithmetic policy
// ---------------------------------------------------------------------------

// All monetary arithmetic in this package goes through these helpers. Money
// carries two fractional digits rounded half-even; intermediate quotients
// keep 38 fractional digits so repeated compounding does not drift.
const (
	moneyScale        = 2
	intermediateScale = 38
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// divExact divides at the policy's intermediate scale.
func divExact(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, intermediateScale)
}

// roundMoney rounds to the money scale using banker's rounding.
func roundMoney(v decimal.Decimal) decimal.Decimal {
	return v.RoundBank(moneyScale)
}

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return divExact(divExact(annualRatePercent, hundred), twelve)
}

// powInt raises base to a non-negative integer power, rounding each step to
// the intermediate scale to keep the representation bounded.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	out := one
	for i := 0; i < exp; i++ {
		out = out.Mul(base).RoundBank(intermediateScale)
	}
	return out
}

// hasMoneyScale reports whether v carries at most two fractional digits.
func hasMoneyScale(v decimal.Decimal) bool {
	return v.Exponent() >= -moneyScale || v.Equal(v.RoundBank(moneyScale))
}

// addMonths advances t by n calendar months, clamping the day of month when
// the target month is shorter (Jan 31 + 1 month = Feb 28/29). Go's AddDate
// normalizes overflow into the next month instead, which would let due dates
// slide across the schedule.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
