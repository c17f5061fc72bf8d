package valueobject

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

// Generation-time rejection: loan parameters outside the policy bounds.
var ErrInvalidCreditParameters = errors.New("invalid credit parameters")

// Payment-time rejections. These are business-rule violations surfaced to
// the caller verbatim; retrying with the same input reproduces the same
// rejection, so none of them is retried automatically.
var (
	ErrInvalidPayment           = errors.New("invalid payment")
	ErrPaymentBelowSchedule     = errors.New("payment is below the scheduled installment amount")
	ErrPriorPaymentsOutstanding = errors.New("earlier scheduled payments are still outstanding")
	ErrPaymentExceedsDebt       = errors.New("payment exceeds the remaining debt")
	ErrPaymentAlreadyMade       = errors.New("payment has already been made for this date")
)

// ErrCreditNotFound is returned when a credit id does not resolve.
var ErrCreditNotFound = errors.New("credit not found")

// ErrUserNotFound is returned when a username does not resolve.
var ErrUserNotFound = errors.New("user not found")
