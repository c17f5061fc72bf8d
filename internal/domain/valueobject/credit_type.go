package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CreditType – immutable value object
// ---------------------------------------------------------------------------

// CreditType distinguishes the two supported repayment structures.
type CreditType struct {
	value string
}

const (
	creditTypeAnnuity        = "ANNUITY"
	creditTypeDifferentiated = "DIFFERENTIATED"
)

var (
	CreditTypeAnnuity        = CreditType{value: creditTypeAnnuity}
	CreditTypeDifferentiated = CreditType{value: creditTypeDifferentiated}
)

var validCreditTypes = map[string]CreditType{
	creditTypeAnnuity:        CreditTypeAnnuity,
	creditTypeDifferentiated: CreditTypeDifferentiated,
}

// NewCreditType creates a CreditType from a raw string.
func NewCreditType(s string) (CreditType, error) {
	v, ok := validCreditTypes[s]
	if !ok {
		return CreditType{}, fmt.Errorf("invalid credit type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the type.
func (t CreditType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t CreditType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t CreditType) Equal(other CreditType) bool { return t.value == other.value }
