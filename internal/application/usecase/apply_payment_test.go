package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/application/usecase"
	"github.com/senior-copycoders/Backend/internal/domain/event"
	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/service"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

func openCredit(t *testing.T) model.Credit {
	t.Helper()
	credit, err := model.NewCredit(
		uuid.New(),
		decimal.NewFromInt(1_000_000), decimal.Zero, decimal.NewFromInt(12), 12,
		time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		valueobject.CreditTypeAnnuity,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return credit.ClearEvents()
}

func TestApplyPayment_Execute(t *testing.T) {
	t.Run("settles a scheduled installment", func(t *testing.T) {
		credit := openCredit(t)
		creditRepo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Credit, error) {
				return credit, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewApplyPaymentUseCase(creditRepo, service.NewCreditValidator(), publisher)

		req := dto.ApplyPaymentRequest{
			CreditID:    credit.ID().String(),
			Amount:      credit.Payment(),
			PaymentDate: "2026-01-15",
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, credit.ID().String(), resp.CreditID)
		assert.False(t, resp.PaidOff)
		require.Len(t, resp.Schedule, 12)
		assert.Equal(t, "PAID", resp.Schedule[0].Status)

		require.Len(t, creditRepo.savedCredits, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.payment_applied", publisher.publishedEvents[0].EventType())
	})

	t.Run("pays off the credit completely", func(t *testing.T) {
		credit := openCredit(t)
		creditRepo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Credit, error) {
				return credit, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewApplyPaymentUseCase(creditRepo, service.NewCreditValidator(), publisher)

		req := dto.ApplyPaymentRequest{
			CreditID:    credit.ID().String(),
			Amount:      decimal.NewFromInt(1_000_000),
			PaymentDate: "2026-01-15",
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, resp.PaidOff)
		assert.True(t, resp.RemainingBalance.IsZero())
		require.Len(t, resp.Schedule, 1)

		require.Len(t, publisher.publishedEvents, 2)
		assert.Equal(t, "credit.paid_off", publisher.publishedEvents[1].EventType())
	})

	t.Run("surfaces business-rule rejections unchanged", func(t *testing.T) {
		credit := openCredit(t)
		creditRepo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Credit, error) {
				return credit, nil
			},
		}
		uc := usecase.NewApplyPaymentUseCase(creditRepo, service.NewCreditValidator(), &mockEventPublisher{})

		req := dto.ApplyPaymentRequest{
			CreditID:    credit.ID().String(),
			Amount:      decimal.NewFromInt(100),
			PaymentDate: "2026-01-15",
		}
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, valueobject.ErrPaymentBelowSchedule)
		assert.Empty(t, creditRepo.savedCredits, "a rejected payment must not touch the ledger")
	})

	t.Run("rejects a malformed payment before loading the credit", func(t *testing.T) {
		loaded := false
		creditRepo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Credit, error) {
				loaded = true
				return model.Credit{}, valueobject.ErrCreditNotFound
			},
		}
		uc := usecase.NewApplyPaymentUseCase(creditRepo, service.NewCreditValidator(), &mockEventPublisher{})

		req := dto.ApplyPaymentRequest{
			CreditID:    uuid.New().String(),
			Amount:      decimal.RequireFromString("100.123"),
			PaymentDate: "2026-01-15",
		}
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, valueobject.ErrInvalidPayment)
		assert.False(t, loaded)
	})

	t.Run("fails when credit not found", func(t *testing.T) {
		uc := usecase.NewApplyPaymentUseCase(&mockCreditRepository{}, service.NewCreditValidator(), &mockEventPublisher{})

		req := dto.ApplyPaymentRequest{
			CreditID:    uuid.New().String(),
			Amount:      decimal.NewFromInt(1000),
			PaymentDate: "2026-01-15",
		}
		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, valueobject.ErrCreditNotFound)
	})

	t.Run("fails when event publishing fails", func(t *testing.T) {
		credit := openCredit(t)
		creditRepo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id uuid.UUID) (model.Credit, error) {
				return credit, nil
			},
		}
		publisher := &mockEventPublisher{
			publishFunc: func(ctx context.Context, evts ...event.DomainEvent) error {
				return fmt.Errorf("kafka unavailable")
			},
		}
		uc := usecase.NewApplyPaymentUseCase(creditRepo, service.NewCreditValidator(), publisher)

		req := dto.ApplyPaymentRequest{
			CreditID:    credit.ID().String(),
			Amount:      credit.Payment(),
			PaymentDate: "2026-01-15",
		}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "publish events")
	})
}
