package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// testCredit opens the reference credit used throughout: 1,000,000 at 12%
// over 12 months, annuity, first payment due 2026-01-15.
func testCredit(t *testing.T) model.Credit {
	t.Helper()
	credit, err := model.NewCredit(
		uuid.New(),
		money("1000000"), money("0"), money("12"), 12,
		date(2026, time.January, 15),
		valueobject.CreditTypeAnnuity,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return credit.ClearEvents()
}

// assertRewriteInvariants checks what must hold after every successful
// payment: dense numbering, per-entry amount split, and balance chain
// continuity. The per-entry balance relation is checked pairwise only;
// an early payoff folds remaining interest into the settling installment,
// which pins its closing balance to zero directly.
func assertRewriteInvariants(t *testing.T, sched []model.Installment) {
	t.Helper()
	require.NotEmpty(t, sched)
	for i, inst := range sched {
		assert.Equal(t, i+1, inst.Number, "installment %d: numbering must stay dense", i+1)
		assert.True(t, inst.Amount.Equal(inst.Interest.Add(inst.Principal)),
			"installment %d: amount %s != interest %s + principal %s",
			inst.Number, inst.Amount, inst.Interest, inst.Principal)
		if i > 0 {
			assert.True(t, inst.BalanceBefore.Equal(sched[i-1].BalanceAfter),
				"installment %d: chain continuity broken", inst.Number)
		}
	}
	// No settled installment may follow a pending one.
	seenPending := false
	for _, inst := range sched {
		if !inst.IsPaid() {
			seenPending = true
		} else {
			assert.False(t, seenPending, "installment %d: settled after pending", inst.Number)
		}
	}
}

func TestApplyPayment_Exact(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	paid, err := credit.ApplyPayment(before[0].DueDate, before[0].Amount, time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 12)
	assertRewriteInvariants(t, after)

	assert.True(t, after[0].IsPaid())
	// Only the status changed; every other field and installment is intact.
	expected := before[0]
	expected.Status = valueobject.InstallmentStatusPaid
	assert.Equal(t, expected, after[0])
	assert.Equal(t, before[1:], after[1:])

	// The receiver is untouched.
	assert.False(t, credit.Schedule()[0].IsPaid())
}

func TestApplyPayment_EarlyPayoff(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	totalInterest := decimal.Zero
	for _, inst := range before {
		totalInterest = totalInterest.Add(inst.Interest)
	}

	paid, err := credit.ApplyPayment(before[0].DueDate, money("1000000"), time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 1)
	assertRewriteInvariants(t, after)

	inst := after[0]
	assert.True(t, inst.IsPaid())
	assert.True(t, money("1000000").Equal(inst.Amount))
	assert.True(t, totalInterest.Equal(inst.Interest), "payoff must absorb the interest of every dropped installment")
	assert.True(t, money("1000000").Sub(totalInterest).Equal(inst.Principal))
	assert.True(t, inst.BalanceAfter.IsZero())
	assert.True(t, paid.IsPaidOff())
}

func TestApplyPayment_Overpay(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	paid, err := credit.ApplyPayment(before[0].DueDate, money("100000"), time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 12, "overpayment must not change the term length")
	assertRewriteInvariants(t, after)

	first := after[0]
	assert.True(t, first.IsPaid())
	assert.True(t, money("100000").Equal(first.Amount))
	assert.True(t, money("10000.00").Equal(first.Interest), "interest stays as planned")
	assert.True(t, money("90000").Equal(first.Principal))
	assert.True(t, money("910000").Equal(first.BalanceAfter))

	// The tail is regenerated against the reduced balance but keeps its
	// identity: numbers, due dates, and pending status.
	assert.True(t, money("910000").Equal(after[1].BalanceBefore))
	assert.True(t, after[1].Amount.LessThan(before[1].Amount), "smaller balance means a smaller installment")
	for i := 1; i < 12; i++ {
		assert.Equal(t, before[i].Number, after[i].Number)
		assert.Equal(t, before[i].DueDate, after[i].DueDate)
		assert.False(t, after[i].IsPaid())
	}
	assert.True(t, after[11].BalanceAfter.IsZero())
}

func TestApplyPayment_InsertPureInterest(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	// Settle the first installment, then pay between the first and second
	// due dates an amount below the second installment's planned interest.
	credit, err := credit.ApplyPayment(before[0].DueDate, before[0].Amount, time.Now().UTC())
	require.NoError(t, err)

	betweenDate := date(2026, time.January, 25)
	paid, err := credit.ApplyPayment(betweenDate, money("500"), time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 13, "insertion grows the schedule by exactly one")
	assertRewriteInvariants(t, after)

	inserted := after[1]
	assert.True(t, inserted.IsPaid())
	assert.Equal(t, 2, inserted.Number)
	assert.Equal(t, betweenDate, inserted.DueDate)
	assert.True(t, money("500").Equal(inserted.Amount))
	assert.True(t, money("500").Equal(inserted.Interest), "whole amount is interest")
	assert.True(t, inserted.Principal.IsZero(), "no principal reduction below the planned interest")
	assert.True(t, inserted.BalanceBefore.Equal(inserted.BalanceAfter))

	// The tail keeps its financial trajectory, shifted by one number.
	prior := credit.Schedule()
	for i := 2; i < 13; i++ {
		assert.Equal(t, prior[i-1].Number+1, after[i].Number)
		assert.Equal(t, prior[i-1].DueDate, after[i].DueDate)
		assert.True(t, prior[i-1].Amount.Equal(after[i].Amount))
	}
}

func TestApplyPayment_InsertWithPrincipal(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	credit, err := credit.ApplyPayment(before[0].DueDate, before[0].Amount, time.Now().UTC())
	require.NoError(t, err)
	prior := credit.Schedule()
	plannedInterest := prior[1].Interest

	paid, err := credit.ApplyPayment(date(2026, time.February, 1), money("50000"), time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 13)
	assertRewriteInvariants(t, after)

	inserted := after[1]
	assert.True(t, inserted.IsPaid())
	assert.True(t, plannedInterest.Equal(inserted.Interest), "interest is capped at the next planned interest")
	assert.True(t, money("50000").Sub(plannedInterest).Equal(inserted.Principal))
	assert.True(t, inserted.BalanceBefore.Sub(inserted.Principal).Equal(inserted.BalanceAfter))

	// The remainder is regenerated against the reduced balance.
	assert.True(t, after[2].BalanceBefore.Equal(inserted.BalanceAfter))
	assert.True(t, after[2].Amount.LessThan(prior[1].Amount))
	assert.True(t, after[12].BalanceAfter.IsZero())
}

func TestApplyPayment_InsertBeforeFirst(t *testing.T) {
	credit := testCredit(t)

	paid, err := credit.ApplyPayment(date(2026, time.January, 5), money("50000"), time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 13)
	assertRewriteInvariants(t, after)

	inserted := after[0]
	assert.Equal(t, 1, inserted.Number)
	assert.True(t, inserted.IsPaid())
	// The opening balance plays the predecessor's closing balance.
	assert.True(t, money("1000000").Equal(inserted.BalanceBefore))
	assert.True(t, money("10000.00").Equal(inserted.Interest))
	assert.True(t, money("40000").Equal(inserted.Principal))
	assert.True(t, money("960000").Equal(inserted.BalanceAfter))
	assert.Equal(t, 2, after[1].Number)
	assert.True(t, after[12].BalanceAfter.IsZero())
}

func TestApplyPayment_InsertPayoffBetweenDates(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	credit, err := credit.ApplyPayment(before[0].DueDate, before[0].Amount, time.Now().UTC())
	require.NoError(t, err)
	remaining := credit.RemainingBalance()

	paid, err := credit.ApplyPayment(date(2026, time.January, 25), remaining, time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 2, "payoff drops everything past the settling installment")
	assertRewriteInvariants(t, after)
	assert.True(t, after[1].BalanceAfter.IsZero())
	assert.True(t, paid.IsPaidOff())
}

func TestApplyPayment_RepayingSettledDateInserts(t *testing.T) {
	credit := testCredit(t)
	before := credit.Schedule()

	credit, err := credit.ApplyPayment(before[0].DueDate, before[0].Amount, time.Now().UTC())
	require.NoError(t, err)

	// A second payment on the already settled date becomes an insertion
	// right after it.
	paid, err := credit.ApplyPayment(before[0].DueDate, money("20000"), time.Now().UTC())
	require.NoError(t, err)

	after := paid.Schedule()
	require.Len(t, after, 13)
	assertRewriteInvariants(t, after)
	assert.True(t, after[1].IsPaid())
	assert.Equal(t, before[0].DueDate, after[1].DueDate)
}

func TestApplyPayment_Rejections(t *testing.T) {
	now := time.Now().UTC()

	t.Run("below scheduled amount", func(t *testing.T) {
		credit := testCredit(t)
		first := credit.Schedule()[0]
		_, err := credit.ApplyPayment(first.DueDate, money("100"), now)
		assert.ErrorIs(t, err, valueobject.ErrPaymentBelowSchedule)
	})

	t.Run("earlier installment still pending", func(t *testing.T) {
		credit := testCredit(t)
		second := credit.Schedule()[1]
		_, err := credit.ApplyPayment(second.DueDate, second.Amount, now)
		assert.ErrorIs(t, err, valueobject.ErrPriorPaymentsOutstanding)
	})

	t.Run("insertion with pending predecessor", func(t *testing.T) {
		credit := testCredit(t)
		_, err := credit.ApplyPayment(date(2026, time.January, 25), money("500"), now)
		assert.ErrorIs(t, err, valueobject.ErrPriorPaymentsOutstanding)
	})

	t.Run("exceeds remaining debt on scheduled date", func(t *testing.T) {
		credit := testCredit(t)
		first := credit.Schedule()[0]
		_, err := credit.ApplyPayment(first.DueDate, money("2000000"), now)
		assert.ErrorIs(t, err, valueobject.ErrPaymentExceedsDebt)
	})

	t.Run("exceeds remaining debt on insertion", func(t *testing.T) {
		credit := testCredit(t)
		_, err := credit.ApplyPayment(date(2026, time.January, 5), money("2000000"), now)
		assert.ErrorIs(t, err, valueobject.ErrPaymentExceedsDebt)
	})

	t.Run("settled date with nothing outstanding", func(t *testing.T) {
		credit := testCredit(t)
		first := credit.Schedule()[0]
		credit, err := credit.ApplyPayment(first.DueDate, money("1000000"), now)
		require.NoError(t, err)
		_, err = credit.ApplyPayment(first.DueDate, money("100"), now)
		assert.ErrorIs(t, err, valueobject.ErrPaymentAlreadyMade)
	})

	t.Run("insertion before an already settled successor", func(t *testing.T) {
		credit := testCredit(t)
		sched := credit.Schedule()
		credit, err := credit.ApplyPayment(sched[0].DueDate, sched[0].Amount, now)
		require.NoError(t, err)
		credit, err = credit.ApplyPayment(sched[1].DueDate, credit.Schedule()[1].Amount, now)
		require.NoError(t, err)
		_, err = credit.ApplyPayment(date(2026, time.January, 25), money("500"), now)
		assert.ErrorIs(t, err, valueobject.ErrPaymentAlreadyMade)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		credit := testCredit(t)
		_, err := credit.ApplyPayment(date(2026, time.January, 15), money("0"), now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidPayment)
	})

	t.Run("more than two fractional digits", func(t *testing.T) {
		credit := testCredit(t)
		_, err := credit.ApplyPayment(date(2026, time.January, 15), money("88848.791"), now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidPayment)
	})

	t.Run("date past the end of the schedule", func(t *testing.T) {
		credit := testCredit(t)
		_, err := credit.ApplyPayment(date(2030, time.June, 1), money("1000"), now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidPayment)
	})
}

func TestApplyPayment_Events(t *testing.T) {
	credit := testCredit(t)
	first := credit.Schedule()[0]

	paid, err := credit.ApplyPayment(first.DueDate, first.Amount, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, paid.DomainEvents(), 1)
	assert.Equal(t, "credit.payment_applied", paid.DomainEvents()[0].EventType())

	settled, err := credit.ApplyPayment(first.DueDate, money("1000000"), time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, settled.DomainEvents(), 2)
	assert.Equal(t, "credit.paid_off", settled.DomainEvents()[1].EventType())
}
