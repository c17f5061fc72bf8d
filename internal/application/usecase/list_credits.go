package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ListCreditsUseCase lists a user's credits without their schedules.
type ListCreditsUseCase struct {
	creditRepo port.CreditRepository
}

// NewListCreditsUseCase wires dependencies.
func NewListCreditsUseCase(creditRepo port.CreditRepository) *ListCreditsUseCase {
	return &ListCreditsUseCase{creditRepo: creditRepo}
}

// Execute retrieves every credit belonging to the user.
func (uc *ListCreditsUseCase) Execute(
	ctx context.Context,
	req dto.ListCreditsRequest,
) ([]dto.CreditResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", valueobject.ErrUserNotFound, err)
	}

	credits, err := uc.creditRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}

	out := make([]dto.CreditResponse, 0, len(credits))
	for _, credit := range credits {
		out = append(out, creditToResponse(credit, false))
	}
	return out, nil
}
