package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/application/usecase"
	"github.com/senior-copycoders/Backend/internal/domain/model"
)

func storedUser(t *testing.T, username, password string) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := model.NewUser(username, string(hash), time.Now().UTC())
	require.NoError(t, err)
	return user
}

func TestRegister_Execute(t *testing.T) {
	t.Run("creates an account and issues a token", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		uc := usecase.NewRegisterUseCase(userRepo, &mockTokenIssuer{})

		resp, err := uc.Execute(context.Background(), dto.RegisterRequest{
			Username: "alice",
			Password: "s3cret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "token-alice", resp.Token)

		require.Len(t, userRepo.savedUsers, 1)
		stored := userRepo.savedUsers[0]
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash()), []byte("s3cret")),
			"stored hash must verify against the original password")
		assert.NotEqual(t, "s3cret", stored.PasswordHash())
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		existing := storedUser(t, "alice", "whatever")
		userRepo := &mockUserRepository{
			findByUsernameFunc: func(ctx context.Context, username string) (model.User, error) {
				return existing, nil
			},
		}
		uc := usecase.NewRegisterUseCase(userRepo, &mockTokenIssuer{})

		_, err := uc.Execute(context.Background(), dto.RegisterRequest{Username: "alice", Password: "x"})
		assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		uc := usecase.NewRegisterUseCase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Execute(context.Background(), dto.RegisterRequest{})
		assert.Error(t, err)
	})
}

func TestLogin_Execute(t *testing.T) {
	t.Run("authenticates with valid credentials", func(t *testing.T) {
		user := storedUser(t, "alice", "s3cret")
		userRepo := &mockUserRepository{
			findByUsernameFunc: func(ctx context.Context, username string) (model.User, error) {
				return user, nil
			},
		}
		uc := usecase.NewLoginUseCase(userRepo, &mockTokenIssuer{})

		resp, err := uc.Execute(context.Background(), dto.LoginRequest{Username: "alice", Password: "s3cret"})

		require.NoError(t, err)
		assert.Equal(t, user.ID().String(), resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		user := storedUser(t, "alice", "s3cret")
		userRepo := &mockUserRepository{
			findByUsernameFunc: func(ctx context.Context, username string) (model.User, error) {
				return user, nil
			},
		}
		uc := usecase.NewLoginUseCase(userRepo, &mockTokenIssuer{})

		_, err := uc.Execute(context.Background(), dto.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("does not reveal whether the account exists", func(t *testing.T) {
		uc := usecase.NewLoginUseCase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Execute(context.Background(), dto.LoginRequest{Username: "nobody", Password: "x"})
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}
