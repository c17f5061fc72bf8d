package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// UserRepo implements port.UserRepository.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepo creates a new PostgreSQL-backed user repository.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Save persists a user account.
func (r *UserRepo) Save(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, user.ID(), user.Username(), user.PasswordHash(), user.CreatedAt())
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// FindByUsername retrieves a user account by username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	var (
		id         uuid.UUID
		name, hash string
		createdAt  time.Time
	)
	err := r.pool.QueryRow(ctx, query, username).Scan(&id, &name, &hash, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, valueobject.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("find user: %w", err)
	}
	return model.ReconstructUser(id, name, hash, createdAt), nil
}
