package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const msgTodoDeleted = "Todo deleted successfully"

// TodoHandler handles HTTP requests for the caller's todos. Every route it
// serves sits behind middleware.Authenticate.
type TodoHandler struct {
	service    ports.TodoService
	pagination config.PaginationConfig
}

// NewTodoHandler creates a new TodoHandler with the given service port and
// list pagination settings.
func NewTodoHandler(service ports.TodoService, pagination config.PaginationConfig) *TodoHandler {
	return &TodoHandler{service: service, pagination: pagination}
}

// ListTodos handles GET /api/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	criteria, page, err := dto.ParseTodoQuery(r.URL.Query(), h.pagination.DefaultLimit, h.pagination.MaxLimit)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	result, err := h.service.List(r.Context(), middleware.CallerFromContext(r.Context()), criteria, page)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.ToListResponse(result))
}

// GetTodo handles GET /api/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), middleware.CallerFromContext(r.Context()), idParam(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.NewDataResponse(dto.ToTodoResponse(t)))
}

// CreateTodo handles POST /api/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	payload, err := dto.DecodeObject(w, r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), middleware.CallerFromContext(r.Context()), payload)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusCreated, dto.NewDataResponse(dto.ToTodoResponse(created)))
}

// UpdateTodo handles PUT /api/todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	payload, err := dto.DecodeObject(w, r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), middleware.CallerFromContext(r.Context()), idParam(r), payload)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.NewDataResponse(dto.ToTodoResponse(updated)))
}

// DeleteTodo handles DELETE /api/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), middleware.CallerFromContext(r.Context()), idParam(r)); err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.NewMessageResponse(msgTodoDeleted))
}

// ToggleTodo handles PATCH /api/todos/{id}/toggle.
func (h *TodoHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.service.Toggle(r.Context(), middleware.CallerFromContext(r.Context()), idParam(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	dto.WriteJSON(w, r, http.StatusOK, dto.NewDataResponse(dto.ToTodoResponse(toggled)))
}
