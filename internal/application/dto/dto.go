package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateCreditRequest carries the data needed to open a credit and generate
// its payment schedule. Dates travel as strict yyyy-MM-dd strings and are
// parsed by the validation gate.
type CreateCreditRequest struct {
	UserID           string          `json:"user_id"`
	CreditAmount     decimal.Decimal `json:"credit_amount"`
	InitialPayment   decimal.Decimal `json:"initial_payment"`
	AnnualRate       decimal.Decimal `json:"annual_rate"`
	TermMonths       int             `json:"term_months"`
	CreditType       string          `json:"credit_type"`
	FirstPaymentDate string          `json:"first_payment_date"`
}

// ApplyPaymentRequest carries a real-world payment against a credit.
type ApplyPaymentRequest struct {
	CreditID    string          `json:"credit_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
}

// GetScheduleRequest identifies a credit whose schedule to read.
type GetScheduleRequest struct {
	CreditID string `json:"credit_id"`
}

// ListCreditsRequest identifies a user whose credits to list.
type ListCreditsRequest struct {
	UserID string `json:"user_id"`
}

// DeleteCreditRequest identifies a credit to remove with its schedule.
type DeleteCreditRequest struct {
	CreditID string `json:"credit_id"`
}

// ExportScheduleRequest identifies a credit whose schedule to render as PDF.
type ExportScheduleRequest struct {
	CreditID string `json:"credit_id"`
}

// PreviewPaymentRequest carries credit parameters for a payment preview.
// For a differentiated credit the preview reports the first, highest payment.
type PreviewPaymentRequest struct {
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	InitialPayment decimal.Decimal `json:"initial_payment"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	TermMonths     int             `json:"term_months"`
	CreditType     string          `json:"credit_type"`
}

// RegisterRequest carries new account credentials.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is the external representation of one schedule entry.
type InstallmentResponse struct {
	Number        int             `json:"number"`
	DueDate       time.Time       `json:"due_date"`
	Amount        decimal.Decimal `json:"amount"`
	Interest      decimal.Decimal `json:"interest"`
	Principal     decimal.Decimal `json:"principal"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Status        string          `json:"status"`
}

// CreditResponse is the external representation of a credit.
type CreditResponse struct {
	ID               string                `json:"id"`
	UserID           string                `json:"user_id"`
	CreditAmount     decimal.Decimal       `json:"credit_amount"`
	InitialPayment   decimal.Decimal       `json:"initial_payment"`
	AnnualRate       decimal.Decimal       `json:"annual_rate"`
	TermMonths       int                   `json:"term_months"`
	CreditType       string                `json:"credit_type"`
	FirstPaymentDate time.Time             `json:"first_payment_date"`
	Payment          decimal.Decimal       `json:"payment"`
	Schedule         []InstallmentResponse `json:"schedule,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// PaymentResponse is the external representation of a payment result.
type PaymentResponse struct {
	CreditID         string                `json:"credit_id"`
	AmountPaid       decimal.Decimal       `json:"amount_paid"`
	RemainingBalance decimal.Decimal       `json:"remaining_balance"`
	PaidOff          bool                  `json:"paid_off"`
	Schedule         []InstallmentResponse `json:"schedule"`
}

// PreviewPaymentResponse carries the computed monthly payment and the income
// tax deduction available on the credit's interest.
type PreviewPaymentResponse struct {
	Payment      decimal.Decimal `json:"payment"`
	TaxDeduction decimal.Decimal `json:"tax_deduction"`
}

// CreditConstantsResponse reports the issuance policy bounds for client
// request forms.
type CreditConstantsResponse struct {
	MinCreditAmount int64 `json:"min_credit_amount"`
	MaxCreditAmount int64 `json:"max_credit_amount"`
	MinInterestRate int64 `json:"min_interest_rate"`
	MaxInterestRate int64 `json:"max_interest_rate"`
	MinCreditPeriod int   `json:"min_credit_period"`
	MaxCreditPeriod int   `json:"max_credit_period"`
}

// AuthResponse carries an issued access token.
type AuthResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ExportScheduleResponse carries a rendered schedule document.
type ExportScheduleResponse struct {
	FileName string `json:"file_name"`
	Content  []byte `json:"-"`
}
