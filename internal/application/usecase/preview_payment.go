package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/service"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// PreviewPaymentUseCase computes the monthly payment and the interest tax
// deduction for prospective credit parameters without opening a credit.
type PreviewPaymentUseCase struct {
	validator *service.CreditValidator
}

// NewPreviewPaymentUseCase wires dependencies.
func NewPreviewPaymentUseCase(validator *service.CreditValidator) *PreviewPaymentUseCase {
	return &PreviewPaymentUseCase{validator: validator}
}

// Execute validates the parameters and runs the schedule generator. For an
// annuity credit every payment is the same; for a differentiated credit the
// reported payment is the first, highest one. Due dates do not affect the
// amounts, so the preview schedule is anchored at the current day.
func (uc *PreviewPaymentUseCase) Execute(
	_ context.Context,
	req dto.PreviewPaymentRequest,
) (dto.PreviewPaymentResponse, error) {
	creditType, err := valueobject.NewCreditType(req.CreditType)
	if err != nil {
		return dto.PreviewPaymentResponse{}, fmt.Errorf("%w: %v", valueobject.ErrInvalidCreditParameters, err)
	}
	if err := uc.validator.ValidateCreditParameters(req.CreditAmount, req.InitialPayment, req.AnnualRate, req.TermMonths); err != nil {
		return dto.PreviewPaymentResponse{}, fmt.Errorf("validate credit: %w", err)
	}

	balance := req.CreditAmount.Sub(req.InitialPayment)
	schedule := model.GenerateSchedule(balance, req.AnnualRate, req.TermMonths, time.Now().UTC(), creditType)

	return dto.PreviewPaymentResponse{
		Payment:      schedule[0].Amount,
		TaxDeduction: model.InterestTaxDeduction(schedule),
	}, nil
}
