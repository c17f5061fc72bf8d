package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CreditValidator: input validation gate
// ---------------------------------------------------------------------------

// Policy bounds for credit issuance. Amounts are rubles, the rate is an
// annual percentage.
var (
	minCreditAmount = decimal.NewFromInt(200_000)
	maxCreditAmount = decimal.NewFromInt(30_000_000)
	maxAnnualRate   = decimal.NewFromInt(18)
)

const (
	minTermMonths = 12
	maxTermMonths = 360

	dateLayout = "2006-01-02"
)

// CreditValidator checks raw request values against the issuance policy
// before anything reaches the schedule generator or the payment engine. The
// engine itself trusts validated input.
type CreditValidator struct{}

func NewCreditValidator() *CreditValidator {
	return &CreditValidator{}
}

// CreditBounds reports the issuance policy limits for clients that build
// credit request forms.
type CreditBounds struct {
	MinCreditAmount int64
	MaxCreditAmount int64
	MinAnnualRate   int64
	MaxAnnualRate   int64
	MinTermMonths   int
	MaxTermMonths   int
}

// Bounds returns the issuance policy limits.
func (v *CreditValidator) Bounds() CreditBounds {
	return CreditBounds{
		MinCreditAmount: minCreditAmount.IntPart(),
		MaxCreditAmount: maxCreditAmount.IntPart(),
		MinAnnualRate:   0,
		MaxAnnualRate:   maxAnnualRate.IntPart(),
		MinTermMonths:   minTermMonths,
		MaxTermMonths:   maxTermMonths,
	}
}

// ValidateCreditRequest checks the parameters of a new credit and parses the
// first payment date. Dates must be strict yyyy-MM-dd.
func (v *CreditValidator) ValidateCreditRequest(
	creditAmount, initialPayment, annualRate decimal.Decimal,
	termMonths int,
	firstPaymentDate string,
) (time.Time, error) {
	if err := v.ValidateCreditParameters(creditAmount, initialPayment, annualRate, termMonths); err != nil {
		return time.Time{}, err
	}
	date, err := parseDate(firstPaymentDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: first payment date: %v", valueobject.ErrInvalidCreditParameters, err)
	}
	return date, nil
}

// ValidateCreditParameters checks the monetary parameters of a credit without
// a first payment date. Payment previews go through this path.
func (v *CreditValidator) ValidateCreditParameters(
	creditAmount, initialPayment, annualRate decimal.Decimal,
	termMonths int,
) error {
	if !hasTwoDecimals(creditAmount) {
		return fmt.Errorf("%w: credit amount must have at most two fractional digits", valueobject.ErrInvalidCreditParameters)
	}
	if !hasTwoDecimals(initialPayment) {
		return fmt.Errorf("%w: initial payment must have at most two fractional digits", valueobject.ErrInvalidCreditParameters)
	}
	if creditAmount.LessThan(minCreditAmount) || creditAmount.GreaterThan(maxCreditAmount) {
		return fmt.Errorf("%w: credit amount must be between %s and %s",
			valueobject.ErrInvalidCreditParameters, minCreditAmount, maxCreditAmount)
	}
	if annualRate.LessThanOrEqual(decimal.Zero) || annualRate.GreaterThan(maxAnnualRate) {
		return fmt.Errorf("%w: annual rate must be in (0, %s]",
			valueobject.ErrInvalidCreditParameters, maxAnnualRate)
	}
	if termMonths < minTermMonths || termMonths > maxTermMonths {
		return fmt.Errorf("%w: term must be between %d and %d months",
			valueobject.ErrInvalidCreditParameters, minTermMonths, maxTermMonths)
	}
	if initialPayment.IsNegative() || initialPayment.GreaterThanOrEqual(creditAmount) {
		return fmt.Errorf("%w: initial payment must be non-negative and below the credit amount",
			valueobject.ErrInvalidCreditParameters)
	}
	return nil
}

// ValidatePaymentRequest checks a payment amount and parses its date.
func (v *CreditValidator) ValidatePaymentRequest(amount decimal.Decimal, paymentDate string) (time.Time, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return time.Time{}, fmt.Errorf("%w: amount must be positive", valueobject.ErrInvalidPayment)
	}
	if !hasTwoDecimals(amount) {
		return time.Time{}, fmt.Errorf("%w: amount must have at most two fractional digits", valueobject.ErrInvalidPayment)
	}
	date, err := parseDate(paymentDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: payment date: %v", valueobject.ErrInvalidPayment, err)
	}
	return date, nil
}

func hasTwoDecimals(v decimal.Decimal) bool {
	return v.Equal(v.Truncate(2))
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be a valid yyyy-MM-dd date")
	}
	return date, nil
}
