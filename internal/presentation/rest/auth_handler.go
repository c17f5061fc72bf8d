package rest

import (
	"log/slog"
	"net/http"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/application/usecase"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	register *usecase.RegisterUseCase
	login    *usecase.LoginUseCase
	logger   *slog.Logger
}

// NewAuthHandler creates the auth HTTP handler.
func NewAuthHandler(
	register *usecase.RegisterUseCase,
	login *usecase.LoginUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logger:   logger,
	}
}

// RegisterRoutes attaches auth routes to the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.register.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("registration rejected", "username", req.Username, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.login.Execute(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
