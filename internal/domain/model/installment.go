package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// Installment is one scheduled (or inserted) obligation in a credit's
// payment schedule. BalanceBefore and BalanceAfter track the outstanding
// principal immediately around the installment; Amount is always the sum of
// Interest and Principal.
type Installment struct {
	Number        int
	DueDate       time.Time
	Amount        decimal.Decimal
	Interest      decimal.Decimal
	Principal     decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Status        valueobject.InstallmentStatus
}

// IsPaid reports whether the installment has been settled.
func (i Installment) IsPaid() bool {
	return i.Status.Equal(valueobject.InstallmentStatusPaid)
}

func copyInstallments(in []Installment) []Installment {
	if in == nil {
		return nil
	}
	out := make([]Installment, len(in))
	copy(out, in)
	return out
}
