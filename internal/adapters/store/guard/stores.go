package guard

import (
	"context"

	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var (
	_ ports.TodoStore = (*TodoStore)(nil)
	_ ports.UserStore = (*UserStore)(nil)
)

// TodoStore guards a ports.TodoStore.
type TodoStore struct {
	next    ports.TodoStore
	breaker *Breaker
}

// NewTodoStore wraps next with b.
func NewTodoStore(next ports.TodoStore, b *Breaker) *TodoStore {
	return &TodoStore{next: next, breaker: b}
}

func (s *TodoStore) Find(ctx context.Context, filter todo.Filter, page todo.Page) ([]todo.Todo, error) {
	return call(ctx, s.breaker, "todos.find", func(ctx context.Context) ([]todo.Todo, error) {
		return s.next.Find(ctx, filter, page)
	})
}

func (s *TodoStore) Count(ctx context.Context, filter todo.Filter) (int64, error) {
	return call(ctx, s.breaker, "todos.count", func(ctx context.Context) (int64, error) {
		return s.next.Count(ctx, filter)
	})
}

func (s *TodoStore) FindOne(ctx context.Context, filter todo.Filter) (*todo.Todo, error) {
	return call(ctx, s.breaker, "todos.find_one", func(ctx context.Context) (*todo.Todo, error) {
		return s.next.FindOne(ctx, filter)
	})
}

func (s *TodoStore) Insert(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	return call(ctx, s.breaker, "todos.insert", func(ctx context.Context) (*todo.Todo, error) {
		return s.next.Insert(ctx, t)
	})
}

func (s *TodoStore) UpdateOne(ctx context.Context, filter todo.Filter, patch todo.Input) (*todo.Todo, error) {
	return call(ctx, s.breaker, "todos.update_one", func(ctx context.Context) (*todo.Todo, error) {
		return s.next.UpdateOne(ctx, filter, patch)
	})
}

func (s *TodoStore) DeleteOne(ctx context.Context, filter todo.Filter) error {
	return s.breaker.execute(ctx, "todos.delete_one", func(ctx context.Context) error {
		return s.next.DeleteOne(ctx, filter)
	})
}

// UserStore guards a ports.UserStore.
type UserStore struct {
	next    ports.UserStore
	breaker *Breaker
}

// NewUserStore wraps next with b.
func NewUserStore(next ports.UserStore, b *Breaker) *UserStore {
	return &UserStore{next: next, breaker: b}
}

func (s *UserStore) Insert(ctx context.Context, u *user.User) (*user.User, error) {
	return call(ctx, s.breaker, "users.insert", func(ctx context.Context) (*user.User, error) {
		return s.next.Insert(ctx, u)
	})
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return call(ctx, s.breaker, "users.find_by_email", func(ctx context.Context) (*user.User, error) {
		return s.next.FindByEmail(ctx, email)
	})
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	return call(ctx, s.breaker, "users.find_by_id", func(ctx context.Context) (*user.User, error) {
		return s.next.FindByID(ctx, id)
	})
}

func (s *UserStore) List(ctx context.Context) ([]user.User, error) {
	return call(ctx, s.breaker, "users.list", func(ctx context.Context) ([]user.User, error) {
		return s.next.List(ctx)
	})
}
