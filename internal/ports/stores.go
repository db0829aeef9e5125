package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
)

// TodoStore is the persistence gateway for todos. Implemented by the store
// adapters; called by the application layer. Every read and write takes a
// todo.Filter built by todo.Scope, so the owner predicate always reaches the
// store. A record that exists but belongs to someone else is indistinguishable
// from one that does not exist.
type TodoStore interface {
	// Find returns the records matching filter, newest first, limited to the
	// requested page.
	Find(ctx context.Context, filter todo.Filter, page todo.Page) ([]todo.Todo, error)

	// Count returns the number of records matching filter, ignoring pagination.
	Count(ctx context.Context, filter todo.Filter) (int64, error)

	// FindOne returns the single record matching filter.
	// Returns domain.ErrNotFound if nothing matches.
	FindOne(ctx context.Context, filter todo.Filter) (*todo.Todo, error)

	// Insert stores a new record and returns it with the store-assigned ID
	// and timestamps.
	Insert(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateOne applies the set fields of patch to the record matching filter,
	// refreshes UpdatedAt, and returns the record as it is after the update.
	// Returns domain.ErrNotFound if nothing matches.
	UpdateOne(ctx context.Context, filter todo.Filter, patch todo.Input) (*todo.Todo, error)

	// DeleteOne removes the record matching filter.
	// Returns domain.ErrNotFound if nothing matches.
	DeleteOne(ctx context.Context, filter todo.Filter) error
}

// UserStore is the persistence gateway for accounts.
type UserStore interface {
	// Insert stores a new account and returns it with its assigned ID.
	// Returns a *domain.ConflictError if the email is already registered.
	Insert(ctx context.Context, u *user.User) (*user.User, error)

	// FindByEmail looks up an account by normalized email.
	// Returns domain.ErrNotFound if no account uses the address.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByID looks up an account by ID.
	// Returns domain.ErrNotFound if the account does not exist.
	FindByID(ctx context.Context, id string) (*user.User, error)

	// List returns every account, oldest first.
	List(ctx context.Context) ([]user.User, error)
}
