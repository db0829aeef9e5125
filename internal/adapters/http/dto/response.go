// Package dto provides the JSON envelopes, request decoding, and error
// mapping for the inbound HTTP adapter layer.
//
// Every response carries a top-level "success" flag. Payloads travel in
// "data"; list responses add count/total/page/pages; failures carry a
// "message" and, for validation failures, an "errors" list.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// TodoResponse is a todo as clients see it.
type TodoResponse struct {
	ID          string     `json:"_id"`
	User        string     `json:"user"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToTodoResponse converts a domain Todo to its response shape.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		User:        t.Owner,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// UserResponse is an account without its credential.
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to its response shape.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

// SessionResponse is the payload returned by register and login.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToSessionResponse converts a ports.Session to its response shape.
func ToSessionResponse(s *ports.Session) SessionResponse {
	return SessionResponse{Token: s.Token, User: ToUserResponse(s.User)}
}

// DataResponse wraps a single payload.
type DataResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// NewDataResponse returns a successful envelope around data.
func NewDataResponse[T any](data T) DataResponse[T] {
	return DataResponse[T]{Success: true, Data: data}
}

// ListResponse is one page of todos. Count is the number of items on this
// page and Total the number across all pages.
type ListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Pages   int            `json:"pages"`
	Data    []TodoResponse `json:"data"`
}

// ToListResponse converts a ports.TodoPage to a list envelope.
func ToListResponse(p *ports.TodoPage) ListResponse {
	items := make([]TodoResponse, len(p.Items))
	for i := range p.Items {
		items[i] = ToTodoResponse(&p.Items[i])
	}
	return ListResponse{
		Success: true,
		Count:   len(items),
		Total:   p.Total,
		Page:    p.Page.Number,
		Pages:   p.Pages(),
		Data:    items,
	}
}

// UserListResponse is the admin account listing.
type UserListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Message string         `json:"message"`
	Data    []UserResponse `json:"data"`
}

// ToUserListResponse converts accounts to the admin listing envelope.
func ToUserListResponse(users []user.User, message string) UserListResponse {
	items := make([]UserResponse, len(users))
	for i := range users {
		items[i] = ToUserResponse(&users[i])
	}
	return UserListResponse{
		Success: true,
		Count:   len(items),
		Message: message,
		Data:    items,
	}
}

// MessageResponse is a successful envelope that carries only a message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewMessageResponse returns a successful message envelope.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
