package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/domain/event"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Credit aggregate root
// ---------------------------------------------------------------------------

// Credit is an immutable aggregate. Mutations return a new copy. The credit
// owns its installment schedule exclusively; the payment recalculation in
// recalc.go is the only code that rewrites installments after generation.
type Credit struct {
	id               uuid.UUID
	userID           uuid.UUID
	creditType       valueobject.CreditType
	creditAmount     decimal.Decimal
	initialPayment   decimal.Decimal
	annualRate       decimal.Decimal
	termMonths       int
	firstPaymentDate time.Time
	payment          decimal.Decimal
	schedule         []Installment
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCredit opens a credit and generates its full payment schedule. The
// caller is expected to have run the input validation gate already; the
// aggregate only re-checks the structural invariants it cannot live without.
func NewCredit(
	userID uuid.UUID,
	creditAmount, initialPayment, annualRate decimal.Decimal,
	termMonths int,
	firstPaymentDate time.Time,
	creditType valueobject.CreditType,
	now time.Time,
) (Credit, error) {
	if userID == uuid.Nil {
		return Credit{}, fmt.Errorf("%w: user id is required", valueobject.ErrInvalidCreditParameters)
	}
	if creditAmount.LessThanOrEqual(decimal.Zero) {
		return Credit{}, fmt.Errorf("%w: credit amount must be positive", valueobject.ErrInvalidCreditParameters)
	}
	if initialPayment.IsNegative() || initialPayment.GreaterThanOrEqual(creditAmount) {
		return Credit{}, fmt.Errorf("%w: initial payment must be in [0, credit amount)", valueobject.ErrInvalidCreditParameters)
	}
	if annualRate.LessThanOrEqual(decimal.Zero) {
		return Credit{}, fmt.Errorf("%w: annual rate must be positive", valueobject.ErrInvalidCreditParameters)
	}
	if termMonths <= 0 {
		return Credit{}, fmt.Errorf("%w: term months must be positive", valueobject.ErrInvalidCreditParameters)
	}
	if creditType.IsZero() {
		return Credit{}, fmt.Errorf("%w: credit type is required", valueobject.ErrInvalidCreditParameters)
	}

	opening := creditAmount.Sub(initialPayment)
	sched := GenerateSchedule(opening, annualRate, termMonths, firstPaymentDate, creditType)

	var payment decimal.Decimal
	if len(sched) > 0 {
		payment = sched[0].Amount
	}

	id := uuid.New()
	credit := Credit{
		id:               id,
		userID:           userID,
		creditType:       creditType,
		creditAmount:     creditAmount,
		initialPayment:   initialPayment,
		annualRate:       annualRate,
		termMonths:       termMonths,
		firstPaymentDate: firstPaymentDate,
		payment:          payment,
		schedule:         sched,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}

	credit.domainEvents = append(credit.domainEvents, event.NewScheduleGenerated(
		id.String(), userID.String(),
		creditAmount, initialPayment, annualRate,
		termMonths, creditType.String(), firstPaymentDate,
	))

	return credit, nil
}

// ReconstructCredit rebuilds a Credit aggregate from persistence.
func ReconstructCredit(
	id, userID uuid.UUID,
	creditType valueobject.CreditType,
	creditAmount, initialPayment, annualRate decimal.Decimal,
	termMonths int,
	firstPaymentDate time.Time,
	payment decimal.Decimal,
	schedule []Installment,
	version int,
	createdAt, updatedAt time.Time,
) Credit {
	return Credit{
		id:               id,
		userID:           userID,
		creditType:       creditType,
		creditAmount:     creditAmount,
		initialPayment:   initialPayment,
		annualRate:       annualRate,
		termMonths:       termMonths,
		firstPaymentDate: firstPaymentDate,
		payment:          payment,
		schedule:         schedule,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c Credit) ID() uuid.UUID                      { return c.id }
func (c Credit) UserID() uuid.UUID                  { return c.userID }
func (c Credit) CreditType() valueobject.CreditType { return c.creditType }
func (c Credit) CreditAmount() decimal.Decimal      { return c.creditAmount }
func (c Credit) InitialPayment() decimal.Decimal    { return c.initialPayment }
func (c Credit) AnnualRate() decimal.Decimal        { return c.annualRate }
func (c Credit) TermMonths() int                    { return c.termMonths }
func (c Credit) FirstPaymentDate() time.Time        { return c.firstPaymentDate }
func (c Credit) Payment() decimal.Decimal           { return c.payment }
func (c Credit) Version() int                       { return c.version }
func (c Credit) CreatedAt() time.Time               { return c.createdAt }
func (c Credit) UpdatedAt() time.Time               { return c.updatedAt }
func (c Credit) DomainEvents() []event.DomainEvent  { return c.domainEvents }

// OpeningBalance is the principal actually financed: the credit amount less
// the initial down payment.
func (c Credit) OpeningBalance() decimal.Decimal {
	return c.creditAmount.Sub(c.initialPayment)
}

// Schedule returns a copy of the installment list, sorted by sequence number.
func (c Credit) Schedule() []Installment {
	return copyInstallments(c.schedule)
}

// RemainingBalance is the outstanding principal ahead of the earliest
// unsettled installment, or zero once everything is paid.
func (c Credit) RemainingBalance() decimal.Decimal {
	for _, inst := range c.schedule {
		if !inst.IsPaid() {
			return inst.BalanceBefore
		}
	}
	return decimal.Zero
}

// IsPaidOff reports whether every installment on the schedule is settled.
func (c Credit) IsPaidOff() bool {
	for _, inst := range c.schedule {
		if !inst.IsPaid() {
			return false
		}
	}
	return len(c.schedule) > 0
}

// Delete emits the deletion event; removal itself is a persistence concern.
func (c Credit) Delete() Credit {
	next := c
	next.domainEvents = copyEvents(c.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewCreditDeleted(c.id.String()))
	return next
}

// ClearEvents returns a copy with an empty event list.
func (c Credit) ClearEvents() Credit {
	next := c
	next.domainEvents = nil
	return next
}

func copyEvents(in []event.DomainEvent) []event.DomainEvent {
	if in == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(in))
	copy(out, in)
	return out
}
