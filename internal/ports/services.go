package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
)

// TodoService defines the service port for the todo resource.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method is scoped to the caller: a zero caller yields
// domain.ErrUnauthorized before any store access.
type TodoService interface {
	// List returns one page of the caller's todos narrowed by criteria.
	List(ctx context.Context, caller domain.Caller, criteria todo.Criteria, page todo.Page) (*TodoPage, error)

	// Get returns a single todo owned by the caller.
	// Returns a *domain.NotFoundError if it does not exist or is not owned.
	Get(ctx context.Context, caller domain.Caller, id string) (*todo.Todo, error)

	// Create validates payload and stores a new todo owned by the caller.
	// Returns a *domain.ValidationError listing every violation.
	Create(ctx context.Context, caller domain.Caller, payload map[string]any) (*todo.Todo, error)

	// Update validates a partial payload and applies it to the caller's todo.
	Update(ctx context.Context, caller domain.Caller, id string, payload map[string]any) (*todo.Todo, error)

	// Delete removes the caller's todo.
	Delete(ctx context.Context, caller domain.Caller, id string) error

	// Toggle flips the completed flag of the caller's todo.
	Toggle(ctx context.Context, caller domain.Caller, id string) (*todo.Todo, error)
}

// TodoPage is one page of a list query together with the unpaginated total.
type TodoPage struct {
	Items []todo.Todo
	Total int64
	Page  todo.Page
}

// Pages returns the number of pages needed for Total at the page's limit.
func (p *TodoPage) Pages() int {
	return p.Page.Pages(p.Total)
}

// UserService defines the service port for accounts and sessions.
type UserService interface {
	// Register creates a user-role account and returns a session for it.
	// Returns a *domain.ConflictError if the email is taken.
	Register(ctx context.Context, name, email, password string) (*Session, error)

	// Login verifies credentials and returns a session.
	// Returns domain.ErrUnauthorized for an unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Me returns the account behind the caller.
	Me(ctx context.Context, caller domain.Caller) (*user.User, error)

	// ListUsers returns every account. Requires an admin caller.
	ListUsers(ctx context.Context, caller domain.Caller) ([]user.User, error)

	// EnsureAdmin creates an admin account unless one already uses email.
	// created reports whether a new account was stored.
	EnsureAdmin(ctx context.Context, name, email, password string) (u *user.User, created bool, err error)
}

// Session pairs a signed bearer token with the account it identifies.
type Session struct {
	Token string
	User  *user.User
}
