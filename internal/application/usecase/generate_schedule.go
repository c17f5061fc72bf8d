package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/service"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// GenerateScheduleUseCase opens a credit and persists its payment schedule.
type GenerateScheduleUseCase struct {
	creditRepo port.CreditRepository
	validator  *service.CreditValidator
	publisher  port.EventPublisher
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(
	creditRepo port.CreditRepository,
	validator *service.CreditValidator,
	publisher port.EventPublisher,
) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{
		creditRepo: creditRepo,
		validator:  validator,
		publisher:  publisher,
	}
}

// Execute validates the request, opens the credit, and stores it together
// with the generated schedule.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.CreateCreditRequest,
) (dto.CreditResponse, error) {
	now := time.Now().UTC()

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("%w: user id: %v", valueobject.ErrInvalidCreditParameters, err)
	}

	creditType, err := valueobject.NewCreditType(req.CreditType)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("%w: %v", valueobject.ErrInvalidCreditParameters, err)
	}

	firstPaymentDate, err := uc.validator.ValidateCreditRequest(
		req.CreditAmount, req.InitialPayment, req.AnnualRate, req.TermMonths, req.FirstPaymentDate,
	)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("validate credit: %w", err)
	}

	credit, err := model.NewCredit(
		userID,
		req.CreditAmount, req.InitialPayment, req.AnnualRate,
		req.TermMonths, firstPaymentDate, creditType, now,
	)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("open credit: %w", err)
	}

	if err := uc.creditRepo.Save(ctx, credit); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("save credit: %w", err)
	}

	if err := uc.publisher.Publish(ctx, credit.DomainEvents()...); err != nil {
		return dto.CreditResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return creditToResponse(credit, true), nil
}
