package usecase

import (
	"context"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/service"
)

// GetCreditConstantsUseCase exposes the issuance policy bounds so clients
// can build credit request forms without hardcoding them.
type GetCreditConstantsUseCase struct {
	validator *service.CreditValidator
}

// NewGetCreditConstantsUseCase wires dependencies.
func NewGetCreditConstantsUseCase(validator *service.CreditValidator) *GetCreditConstantsUseCase {
	return &GetCreditConstantsUseCase{validator: validator}
}

// Execute returns the current policy bounds.
func (uc *GetCreditConstantsUseCase) Execute(_ context.Context) dto.CreditConstantsResponse {
	bounds := uc.validator.Bounds()
	return dto.CreditConstantsResponse{
		MinCreditAmount: bounds.MinCreditAmount,
		MaxCreditAmount: bounds.MaxCreditAmount,
		MinInterestRate: bounds.MinAnnualRate,
		MaxInterestRate: bounds.MaxAnnualRate,
		MinCreditPeriod: bounds.MinTermMonths,
		MaxCreditPeriod: bounds.MaxTermMonths,
	}
}
