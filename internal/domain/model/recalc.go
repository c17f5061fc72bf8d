package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/domain/event"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Payment recalculation
// ---------------------------------------------------------------------------

// paymentDecision is the outcome of classifying a payment against the
// schedule. Classification and execution are separated so every branch of
// the schedule rewrite runs through one dispatch.
type paymentDecision int

const (
	payExact      paymentDecision = iota // settles a pending installment at its planned amount
	payoffEarly                          // closes the credit on a scheduled date
	overpay                              // exceeds the plan on a scheduled date, tail regenerated
	insertBetween                        // out-of-schedule payment on an already settled date
	insertPayoff                         // out-of-schedule payment closing the credit
	insertOverpay                        // out-of-schedule payment between due dates
)

// resolution carries the classified decision plus the anchor the executor
// needs: target is the index of the matched installment for the scheduled
// cases, or the index the new installment is inserted at for the insertion
// cases. balance is the outstanding principal the payment is applied against.
type resolution struct {
	decision paymentDecision
	target   int
	balance  decimal.Decimal
}

// ApplyPayment posts a real-world payment against the schedule and returns a
// copy of the credit with the schedule rewritten. The schedule invariants
// (dense ascending numbering, chain continuity, no settled installment after
// a pending one) hold on the returned copy; on error the receiver is
// returned unchanged.
func (c Credit) ApplyPayment(paymentDate time.Time, amount decimal.Decimal, now time.Time) (Credit, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return c, fmt.Errorf("%w: amount must be positive", valueobject.ErrInvalidPayment)
	}
	if !hasMoneyScale(amount) {
		return c, fmt.Errorf("%w: amount must have at most two fractional digits", valueobject.ErrInvalidPayment)
	}
	if len(c.schedule) == 0 {
		return c, fmt.Errorf("%w: credit has no schedule", valueobject.ErrInvalidPayment)
	}

	date := truncateToDay(paymentDate)

	res, err := c.classifyPayment(date, amount)
	if err != nil {
		return c, err
	}

	var schedule []Installment
	switch res.decision {
	case payExact:
		schedule = c.executePayExact(res)
	case payoffEarly:
		schedule = c.executePayoff(res, amount)
	case overpay:
		schedule = c.executeOverpay(res, amount)
	case insertPayoff:
		schedule = c.executeInsertPayoff(res, date, amount)
	case insertBetween, insertOverpay:
		schedule = c.executeInsertOverpay(res, date, amount)
	}

	next := c
	next.schedule = schedule
	next.updatedAt = now
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentApplied(
		c.id.String(), date, amount, next.RemainingBalance(),
	))
	if next.IsPaidOff() {
		next.domainEvents = append(next.domainEvents, event.NewCreditPaidOff(c.id.String()))
	}
	return next, nil
}

// classifyPayment maps a validated payment onto a decision without touching
// the schedule.
func (c Credit) classifyPayment(date time.Time, amount decimal.Decimal) (resolution, error) {
	sched := c.schedule

	// Scheduled date: the payment lands on an existing installment.
	if i, ok := c.findByDueDate(date); ok {
		inst := sched[i]
		if inst.IsPaid() {
			// Re-paying a settled date is an insertion immediately after
			// it, legal only while something later is still outstanding.
			if i+1 >= len(sched) || sched[i+1].IsPaid() {
				return resolution{}, valueobject.ErrPaymentAlreadyMade
			}
			return c.classifyInsertion(insertBetween, i+1, inst.BalanceAfter, amount)
		}

		if amount.LessThan(inst.Amount) {
			return resolution{}, valueobject.ErrPaymentBelowSchedule
		}
		for j := 0; j < i; j++ {
			if !sched[j].IsPaid() {
				return resolution{}, valueobject.ErrPriorPaymentsOutstanding
			}
		}
		if amount.Equal(inst.Amount) {
			return resolution{decision: payExact, target: i}, nil
		}
		if amount.GreaterThan(inst.BalanceBefore) {
			return resolution{}, valueobject.ErrPaymentExceedsDebt
		}
		if amount.Equal(inst.BalanceBefore) {
			return resolution{decision: payoffEarly, target: i, balance: inst.BalanceBefore}, nil
		}
		return resolution{decision: overpay, target: i, balance: inst.BalanceBefore}, nil
	}

	// Out-of-schedule date: find the insertion point.
	if date.Before(sched[0].DueDate) {
		// The opening balance plays the predecessor's closing balance when
		// the payment precedes the whole schedule.
		return c.classifyInsertion(insertOverpay, 0, c.OpeningBalance(), amount)
	}
	for i := 0; i+1 < len(sched); i++ {
		prev, nextInst := sched[i], sched[i+1]
		if date.After(prev.DueDate) && date.Before(nextInst.DueDate) {
			if !prev.IsPaid() {
				return resolution{}, valueobject.ErrPriorPaymentsOutstanding
			}
			if nextInst.IsPaid() {
				return resolution{}, valueobject.ErrPaymentAlreadyMade
			}
			return c.classifyInsertion(insertOverpay, i+1, prev.BalanceAfter, amount)
		}
	}
	return resolution{}, fmt.Errorf("%w: payment date is past the end of the schedule", valueobject.ErrInvalidPayment)
}

// classifyInsertion settles the amount-versus-balance sub-cases shared by
// every insertion path. at is the index the new installment would occupy.
func (c Credit) classifyInsertion(kind paymentDecision, at int, balance, amount decimal.Decimal) (resolution, error) {
	if amount.GreaterThan(balance) {
		return resolution{}, valueobject.ErrPaymentExceedsDebt
	}
	if amount.Equal(balance) {
		return resolution{decision: insertPayoff, target: at, balance: balance}, nil
	}
	return resolution{decision: kind, target: at, balance: balance}, nil
}

func (c Credit) findByDueDate(date time.Time) (int, bool) {
	for i, inst := range c.schedule {
		if inst.DueDate.Equal(date) {
			return i, true
		}
	}
	return 0, false
}

// ---------------------------------------------------------------------------
// Executors. Each builds the full replacement schedule as a fresh value; the
// caller swaps it in wholesale, so a half-applied rewrite can never escape.
// ---------------------------------------------------------------------------

func (c Credit) executePayExact(res resolution) []Installment {
	sched := copyInstallments(c.schedule)
	sched[res.target].Status = valueobject.InstallmentStatusPaid
	return sched
}

// executePayoff closes the credit on a scheduled date. The settled
// installment absorbs the interest of everything after it and the tail is
// dropped.
func (c Credit) executePayoff(res resolution, amount decimal.Decimal) []Installment {
	sched := copyInstallments(c.schedule[:res.target+1])
	inst := &sched[res.target]

	interest := inst.Interest
	for _, later := range c.schedule[res.target+1:] {
		interest = interest.Add(later.Interest)
	}

	inst.Amount = amount
	inst.Interest = interest
	inst.Principal = amount.Sub(interest)
	inst.BalanceAfter = decimal.Zero
	inst.Status = valueobject.InstallmentStatusPaid
	return sched
}

// executeOverpay settles a scheduled installment above plan and regenerates
// the financial fields of the remaining installments against the reduced
// balance. Numbering, due dates, and statuses of the tail are preserved.
func (c Credit) executeOverpay(res resolution, amount decimal.Decimal) []Installment {
	sched := copyInstallments(c.schedule)
	inst := &sched[res.target]

	principal := amount.Sub(inst.Interest)
	newBalance := inst.BalanceBefore.Sub(principal)

	inst.Amount = amount
	inst.Principal = principal
	inst.BalanceAfter = newBalance
	inst.Status = valueobject.InstallmentStatusPaid

	spliceRegenerated(sched[res.target+1:], newBalance, c.annualRate, c.creditType, sched[res.target+1].DueDate)
	return sched
}

// executeInsertPayoff closes the credit with a payment on an out-of-schedule
// date. Everything past the insertion point is replaced by the single
// settling installment.
func (c Credit) executeInsertPayoff(res resolution, date time.Time, amount decimal.Decimal) []Installment {
	sched := copyInstallments(c.schedule[:res.target])

	var interest decimal.Decimal
	for _, later := range c.schedule[res.target:] {
		interest = interest.Add(later.Interest)
	}

	sched = append(sched, Installment{
		Number:        res.target + 1,
		DueDate:       date,
		Amount:        amount,
		Interest:      interest,
		Principal:     amount.Sub(interest),
		BalanceBefore: res.balance,
		BalanceAfter:  decimal.Zero,
		Status:        valueobject.InstallmentStatusPaid,
	})
	return sched
}

// executeInsertOverpay splices a new settled installment into the schedule
// and regenerates the tail against the reduced balance. The interest portion
// of the inserted installment is capped at the next installment's planned
// interest; anything below that cap is recorded as pure interest with no
// principal reduction.
func (c Credit) executeInsertOverpay(res resolution, date time.Time, amount decimal.Decimal) []Installment {
	at := res.target
	planned := c.schedule[at].Interest

	interest := amount
	principal := decimal.Zero
	if amount.GreaterThan(planned) {
		interest = planned
		principal = amount.Sub(planned)
	}
	newBalance := res.balance.Sub(principal)

	inserted := Installment{
		Number:        at + 1,
		DueDate:       date,
		Amount:        amount,
		Interest:      interest,
		Principal:     principal,
		BalanceBefore: res.balance,
		BalanceAfter:  newBalance,
		Status:        valueobject.InstallmentStatusPaid,
	}

	sched := make([]Installment, 0, len(c.schedule)+1)
	sched = append(sched, c.schedule[:at]...)
	sched = append(sched, inserted)
	tail := copyInstallments(c.schedule[at:])
	for i := range tail {
		tail[i].Number++
	}
	spliceRegenerated(tail, newBalance, c.annualRate, c.creditType, tail[0].DueDate)
	return append(sched, tail...)
}

// spliceRegenerated overwrites the financial fields of tail with a schedule
// freshly generated from balance, keeping each entry's number, due date, and
// status untouched.
func spliceRegenerated(
	tail []Installment,
	balance, annualRate decimal.Decimal,
	creditType valueobject.CreditType,
	startDate time.Time,
) {
	fresh := GenerateSchedule(balance, annualRate, len(tail), startDate, creditType)
	for i := range tail {
		tail[i].Amount = fresh[i].Amount
		tail[i].Interest = fresh[i].Interest
		tail[i].Principal = fresh[i].Principal
		tail[i].BalanceBefore = fresh[i].BalanceBefore
		tail[i].BalanceAfter = fresh[i].BalanceAfter
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
