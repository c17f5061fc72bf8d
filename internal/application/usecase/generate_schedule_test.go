package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/application/usecase"
	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/service"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

func validCreateRequest() dto.CreateCreditRequest {
	return dto.CreateCreditRequest{
		UserID:           uuid.New().String(),
		CreditAmount:     decimal.NewFromInt(1_000_000),
		InitialPayment:   decimal.Zero,
		AnnualRate:       decimal.NewFromInt(12),
		TermMonths:       12,
		CreditType:       "ANNUITY",
		FirstPaymentDate: "2026-01-15",
	}
}

func TestGenerateSchedule_Execute(t *testing.T) {
	t.Run("opens a credit with a full schedule", func(t *testing.T) {
		creditRepo := &mockCreditRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewGenerateScheduleUseCase(creditRepo, service.NewCreditValidator(), publisher)

		resp, err := uc.Execute(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		require.Len(t, resp.Schedule, 12)
		assert.True(t, resp.Payment.Equal(resp.Schedule[0].Amount))
		assert.True(t, resp.Schedule[11].BalanceAfter.IsZero())

		require.Len(t, creditRepo.savedCredits, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "credit.schedule_generated", publisher.publishedEvents[0].EventType())
	})

	t.Run("rejects parameters outside policy", func(t *testing.T) {
		creditRepo := &mockCreditRepository{}
		uc := usecase.NewGenerateScheduleUseCase(creditRepo, service.NewCreditValidator(), &mockEventPublisher{})

		req := validCreateRequest()
		req.CreditAmount = decimal.NewFromInt(100_000) // below minimum

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, valueobject.ErrInvalidCreditParameters)
		assert.Empty(t, creditRepo.savedCredits)
	})

	t.Run("rejects an unknown credit type", func(t *testing.T) {
		uc := usecase.NewGenerateScheduleUseCase(&mockCreditRepository{}, service.NewCreditValidator(), &mockEventPublisher{})

		req := validCreateRequest()
		req.CreditType = "BALLOON"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, valueobject.ErrInvalidCreditParameters)
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		uc := usecase.NewGenerateScheduleUseCase(&mockCreditRepository{}, service.NewCreditValidator(), &mockEventPublisher{})

		req := validCreateRequest()
		req.UserID = "not-a-uuid"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, valueobject.ErrInvalidCreditParameters)
	})

	t.Run("fails when save fails", func(t *testing.T) {
		creditRepo := &mockCreditRepository{
			saveFunc: func(ctx context.Context, _ model.Credit) error {
				return fmt.Errorf("database unavailable")
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewGenerateScheduleUseCase(creditRepo, service.NewCreditValidator(), publisher)

		_, err := uc.Execute(context.Background(), validCreateRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save credit")
		assert.Empty(t, publisher.publishedEvents)
	})
}
