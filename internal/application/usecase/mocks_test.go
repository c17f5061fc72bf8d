package usecase_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/domain/event"
	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockCreditRepository struct {
	saveFunc         func(ctx context.Context, credit model.Credit) error
	findByIDFunc     func(ctx context.Context, id uuid.UUID) (model.Credit, error)
	findByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]model.Credit, error)
	deleteFunc       func(ctx context.Context, id uuid.UUID) error
	savedCredits     []model.Credit
	deletedIDs       []uuid.UUID
}

func (m *mockCreditRepository) Save(ctx context.Context, credit model.Credit) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, credit)
	}
	m.savedCredits = append(m.savedCredits, credit)
	return nil
}

func (m *mockCreditRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Credit, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Credit{}, valueobject.ErrCreditNotFound
}

func (m *mockCreditRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Credit, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

type mockUserRepository struct {
	saveFunc           func(ctx context.Context, user model.User) error
	findByUsernameFunc func(ctx context.Context, username string) (model.User, error)
	savedUsers         []model.User
}

func (m *mockUserRepository) Save(ctx context.Context, user model.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, user)
	}
	m.savedUsers = append(m.savedUsers, user)
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return model.User{}, valueobject.ErrUserNotFound
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockTokenIssuer struct {
	generateFunc func(userID uuid.UUID, username string) (string, error)
}

func (m *mockTokenIssuer) GenerateToken(userID uuid.UUID, username string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(userID, username)
	}
	return fmt.Sprintf("token-%s", username), nil
}

type mockScheduleRenderer struct {
	renderFunc func(credit model.Credit) ([]byte, error)
}

func (m *mockScheduleRenderer) Render(credit model.Credit) ([]byte, error) {
	if m.renderFunc != nil {
		return m.renderFunc(credit)
	}
	return []byte("%PDF-1.4"), nil
}
