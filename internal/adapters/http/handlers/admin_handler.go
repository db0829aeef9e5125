package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const msgUsersRetrieved = "Users retrieved successfully"

// AdminHandler serves the admin-only routes.
type AdminHandler struct {
	service ports.UserService
}

// NewAdminHandler creates a new AdminHandler with the given service port.
func NewAdminHandler(service ports.UserService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context(), middleware.CallerFromContext(r.Context()))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToUserListResponse(users, msgUsersRetrieved))
}
