package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/model"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// TokenIssuer issues signed access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, username string) (string, error)
}

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username is already taken")

// RegisterUseCase creates a user account and issues its first token.
type RegisterUseCase struct {
	userRepo port.UserRepository
	tokens   TokenIssuer
}

// NewRegisterUseCase wires dependencies.
func NewRegisterUseCase(userRepo port.UserRepository, tokens TokenIssuer) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Execute hashes the password, stores the account, and returns a token.
func (uc *RegisterUseCase) Execute(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return dto.AuthResponse{}, errors.New("username and password are required")
	}

	_, err := uc.userRepo.FindByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return dto.AuthResponse{}, ErrUsernameTaken
	case !errors.Is(err, valueobject.ErrUserNotFound):
		return dto.AuthResponse{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := model.NewUser(req.Username, string(hash), time.Now().UTC())
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("create user: %w", err)
	}

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return dto.AuthResponse{}, fmt.Errorf("save user: %w", err)
	}

	token, err := uc.tokens.GenerateToken(user.ID(), user.Username())
	if err != nil {
		return dto.AuthResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return dto.AuthResponse{
		UserID:   user.ID().String(),
		Username: user.Username(),
		Token:    token,
	}, nil
}
