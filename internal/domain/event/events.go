package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ScheduleGenerated is raised when a credit is opened and its payment
// schedule is produced.
type ScheduleGenerated struct {
	events.BaseEvent
	UserID          string          `json:"user_id"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	InitialPayment  decimal.Decimal `json:"initial_payment"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	TermMonths      int             `json:"term_months"`
	CreditType      string          `json:"credit_type"`
	FirstPaymentDue time.Time       `json:"first_payment_due"`
}

func NewScheduleGenerated(
	creditID, userID string,
	creditAmount, initialPayment, annualRate decimal.Decimal,
	termMonths int, creditType string, firstPaymentDue time.Time,
) ScheduleGenerated {
	return ScheduleGenerated{
		BaseEvent:       events.NewBaseEvent("credit.schedule_generated", creditID, "Credit"),
		UserID:          userID,
		CreditAmount:    creditAmount,
		InitialPayment:  initialPayment,
		AnnualRate:      annualRate,
		TermMonths:      termMonths,
		CreditType:      creditType,
		FirstPaymentDue: firstPaymentDue,
	}
}

// PaymentApplied is raised when a payment is posted against the schedule.
type PaymentApplied struct {
	events.BaseEvent
	PaymentDate      time.Time       `json:"payment_date"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewPaymentApplied(
	creditID string,
	paymentDate time.Time,
	amount, remainingBalance decimal.Decimal,
) PaymentApplied {
	return PaymentApplied{
		BaseEvent:        events.NewBaseEvent("credit.payment_applied", creditID, "Credit"),
		PaymentDate:      paymentDate,
		Amount:           amount,
		RemainingBalance: remainingBalance,
	}
}

// CreditPaidOff is raised when a payment closes the credit ahead of or at
// the end of its term.
type CreditPaidOff struct {
	events.BaseEvent
}

func NewCreditPaidOff(creditID string) CreditPaidOff {
	return CreditPaidOff{
		BaseEvent: events.NewBaseEvent("credit.paid_off", creditID, "Credit"),
	}
}

// CreditDeleted is raised when a credit and its schedule are removed.
type CreditDeleted struct {
	events.BaseEvent
}

func NewCreditDeleted(creditID string) CreditDeleted {
	return CreditDeleted{
		BaseEvent: events.NewBaseEvent("credit.deleted", creditID, "Credit"),
	}
}
