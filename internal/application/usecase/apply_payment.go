package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/service"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ApplyPaymentUseCase posts a payment against a credit and persists the
// rewritten schedule as one atomic unit.
type ApplyPaymentUseCase struct {
	creditRepo port.CreditRepository
	validator  *service.CreditValidator
	publisher  port.EventPublisher
}

// NewApplyPaymentUseCase wires dependencies.
func NewApplyPaymentUseCase(
	creditRepo port.CreditRepository,
	validator *service.CreditValidator,
	publisher port.EventPublisher,
) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		creditRepo: creditRepo,
		validator:  validator,
		publisher:  publisher,
	}
}

// Execute validates the payment, runs the schedule recalculation, and saves
// the result. Repository Save carries the aggregate version, so two
// concurrent payments against the same credit cannot interleave.
func (uc *ApplyPaymentUseCase) Execute(
	ctx context.Context,
	req dto.ApplyPaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	creditID, err := uuid.Parse(req.CreditID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("%w: credit id: %v", valueobject.ErrInvalidPayment, err)
	}

	paymentDate, err := uc.validator.ValidatePaymentRequest(req.Amount, req.PaymentDate)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("validate payment: %w", err)
	}

	credit, err := uc.creditRepo.FindByID(ctx, creditID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find credit: %w", err)
	}

	credit, err = credit.ApplyPayment(paymentDate, req.Amount, now)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	if err := uc.creditRepo.Save(ctx, credit); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save credit: %w", err)
	}

	if err := uc.publisher.Publish(ctx, credit.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		CreditID:         credit.ID().String(),
		AmountPaid:       req.Amount,
		RemainingBalance: credit.RemainingBalance(),
		PaidOff:          credit.IsPaidOff(),
		Schedule:         installmentsToResponse(credit.Schedule()),
	}, nil
}
