package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// DeleteCreditUseCase removes a credit together with its installments.
type DeleteCreditUseCase struct {
	creditRepo port.CreditRepository
	publisher  port.EventPublisher
}

// NewDeleteCreditUseCase wires dependencies.
func NewDeleteCreditUseCase(
	creditRepo port.CreditRepository,
	publisher port.EventPublisher,
) *DeleteCreditUseCase {
	return &DeleteCreditUseCase{
		creditRepo: creditRepo,
		publisher:  publisher,
	}
}

// Execute deletes the credit; the repository drops the installments in the
// same transaction so no orphaned entries remain.
func (uc *DeleteCreditUseCase) Execute(ctx context.Context, req dto.DeleteCreditRequest) error {
	creditID, err := uuid.Parse(req.CreditID)
	if err != nil {
		return fmt.Errorf("%w: %v", valueobject.ErrCreditNotFound, err)
	}

	credit, err := uc.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return fmt.Errorf("find credit: %w", err)
	}
	credit = credit.Delete()

	if err := uc.creditRepo.Delete(ctx, creditID); err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}

	if err := uc.publisher.Publish(ctx, credit.DomainEvents()...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}
	return nil
}
