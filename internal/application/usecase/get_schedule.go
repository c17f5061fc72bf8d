package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// GetScheduleUseCase reads a credit together with its schedule.
type GetScheduleUseCase struct {
	creditRepo port.CreditRepository
}

// NewGetScheduleUseCase wires dependencies.
func NewGetScheduleUseCase(creditRepo port.CreditRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{creditRepo: creditRepo}
}

// Execute retrieves the credit and its installments sorted by number.
func (uc *GetScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GetScheduleRequest,
) (dto.CreditResponse, error) {
	creditID, err := uuid.Parse(req.CreditID)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("%w: %v", valueobject.ErrCreditNotFound, err)
	}

	credit, err := uc.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return dto.CreditResponse{}, fmt.Errorf("find credit: %w", err)
	}

	return creditToResponse(credit, true), nil
}
