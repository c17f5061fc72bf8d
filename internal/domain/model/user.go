package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// User is the account a credit belongs to. Password hashing happens in the
// application layer; the aggregate only stores the resulting hash.
type User struct {
	id           uuid.UUID
	username     string
	passwordHash string
	createdAt    time.Time
}

// NewUser registers a user with an already hashed password.
func NewUser(username, passwordHash string, now time.Time) (User, error) {
	if username == "" {
		return User{}, errors.New("username is required")
	}
	if passwordHash == "" {
		return User{}, errors.New("password hash is required")
	}
	return User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence.
func ReconstructUser(id uuid.UUID, username, passwordHash string, createdAt time.Time) User {
	return User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u User) ID() uuid.UUID        { return u.id }
func (u User) Username() string     { return u.username }
func (u User) PasswordHash() string { return u.passwordHash }
func (u User) CreatedAt() time.Time { return u.createdAt }
