package handlers

import (
	"errors"
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const msgInvalidCredentials = "Invalid credentials"

// AuthHandler handles account registration, login, and the current-user
// lookup.
type AuthHandler struct {
	service ports.UserService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(service ports.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := dto.Decode(w, r, &req); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	session, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.NewDataResponse(dto.ToSessionResponse(session)))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := dto.Decode(w, r, &req); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			dto.WriteFailure(w, r, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.NewDataResponse(dto.ToSessionResponse(session)))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Me(r.Context(), middleware.CallerFromContext(r.Context()))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.NewDataResponse(dto.ToUserResponse(u)))
}
