package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/senior-copycoders/Backend/internal/domain/event"
	"github.com/senior-copycoders/Backend/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CreditRepository persists and retrieves credits together with their full
// installment schedules. Save rewrites the schedule wholesale inside one
// transaction guarded by the aggregate version.
type CreditRepository interface {
	Save(ctx context.Context, credit model.Credit) error
	FindByID(ctx context.Context, id uuid.UUID) (model.Credit, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.Credit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	Save(ctx context.Context, user model.User) error
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// ScheduleRenderer renders a credit's schedule into a downloadable document.
type ScheduleRenderer interface {
	Render(credit model.Credit) ([]byte, error)
}
