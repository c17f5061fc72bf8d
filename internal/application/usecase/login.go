package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/domain/port"
	"github.com/senior-copycoders/Backend/internal/domain/valueobject"
)

// ErrInvalidCredentials is returned on a bad username/password pair. The
// same error covers both cases so login attempts cannot probe for accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginUseCase authenticates a user and issues a token.
type LoginUseCase struct {
	userRepo port.UserRepository
	tokens   TokenIssuer
}

// NewLoginUseCase wires dependencies.
func NewLoginUseCase(userRepo port.UserRepository, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Execute verifies the credentials and returns a fresh token.
func (uc *LoginUseCase) Execute(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, valueobject.ErrUserNotFound) {
			return dto.AuthResponse{}, ErrInvalidCredentials
		}
		return dto.AuthResponse{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, ErrInvalidCredentials
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
