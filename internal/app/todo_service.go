// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

const todoResource = "Todo"

// TodoService implements ports.TodoService by composing the validation stage,
// the owner scope, and the TodoStore gateway. Mutations read the scoped record
// first so a missing or foreign record surfaces as a not-found error before
// any write is attempted.
type TodoService struct {
	store   ports.TodoStore
	metrics ports.DomainMetrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewTodoService creates a TodoService. A nil metrics or logger is replaced
// with a no-op implementation.
func NewTodoService(store ports.TodoStore, metrics ports.DomainMetrics, logger *slog.Logger) *TodoService {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:   store,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns one page of the caller's todos, newest first, with the total
// number of matching records.
func (s *TodoService) List(ctx context.Context, caller domain.Caller, criteria todo.Criteria, page todo.Page) (*ports.TodoPage, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	s.logger.InfoContext(ctx, "listing todos",
		slog.String("user_id", caller.ID),
		slog.Int("page", page.Number),
		slog.Int("limit", page.Limit),
	)

	filter := todo.Scope(caller, "").Narrow(criteria)

	items, err := s.store.Find(ctx, filter, page)
	if err != nil {
		s.logFailure(ctx, "List", caller, "", err)
		return nil, fmt.Errorf("finding todos: %w", err)
	}

	total, err := s.store.Count(ctx, filter)
	if err != nil {
		s.logFailure(ctx, "List", caller, "", err)
		return nil, fmt.Errorf("counting todos: %w", err)
	}

	return &ports.TodoPage{Items: items, Total: total, Page: page}, nil
}

// Get returns the caller's todo with the given id.
func (s *TodoService) Get(ctx context.Context, caller domain.Caller, id string) (*todo.Todo, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	s.logger.InfoContext(ctx, "fetching todo", slog.String("todo_id", id))

	t, err := s.findOwned(ctx, caller, id)
	if err != nil {
		s.logFailure(ctx, "Get", caller, id, err)
		return nil, err
	}
	return t, nil
}

// Create validates payload and stores a new todo owned by the caller. Any
// owner field in payload is dropped by validation.
func (s *TodoService) Create(ctx context.Context, caller domain.Caller, payload map[string]any) (*todo.Todo, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	in, err := todo.Validate(todo.OpCreate, payload, s.now())
	if err != nil {
		s.metrics.RecordValidationFailure(todo.OpCreate.String())
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating todo", slog.String("user_id", caller.ID))

	created, err := s.store.Insert(ctx, todo.New(caller.ID, in))
	if err != nil {
		s.logFailure(ctx, "Create", caller, "", err)
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	s.metrics.RecordTodoMutation("create")
	return created, nil
}

// Update validates a partial payload and applies it to the caller's todo.
func (s *TodoService) Update(ctx context.Context, caller domain.Caller, id string, payload map[string]any) (*todo.Todo, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	in, err := todo.Validate(todo.OpUpdate, payload, s.now())
	if err != nil {
		s.metrics.RecordValidationFailure(todo.OpUpdate.String())
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating todo", slog.String("todo_id", id))

	updated, err := s.mutate(ctx, caller, id, func(filter todo.Filter, _ *todo.Todo) (*todo.Todo, error) {
		return s.store.UpdateOne(ctx, filter, in)
	})
	if err != nil {
		s.logFailure(ctx, "Update", caller, id, err)
		return nil, err
	}

	s.metrics.RecordTodoMutation("update")
	return updated, nil
}

// Delete removes the caller's todo.
func (s *TodoService) Delete(ctx context.Context, caller domain.Caller, id string) error {
	if caller.IsZero() {
		return domain.ErrUnauthorized
	}
	s.logger.InfoContext(ctx, "deleting todo", slog.String("todo_id", id))

	_, err := s.mutate(ctx, caller, id, func(filter todo.Filter, existing *todo.Todo) (*todo.Todo, error) {
		return existing, s.store.DeleteOne(ctx, filter)
	})
	if err != nil {
		s.logFailure(ctx, "Delete", caller, id, err)
		return err
	}

	s.metrics.RecordTodoMutation("delete")
	return nil
}

// Toggle flips the completed flag of the caller's todo and persists it.
func (s *TodoService) Toggle(ctx context.Context, caller domain.Caller, id string) (*todo.Todo, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	s.logger.InfoContext(ctx, "toggling todo", slog.String("todo_id", id))

	toggled, err := s.mutate(ctx, caller, id, func(filter todo.Filter, existing *todo.Todo) (*todo.Todo, error) {
		return s.store.UpdateOne(ctx, filter, todo.ToggleInput(existing))
	})
	if err != nil {
		s.logFailure(ctx, "Toggle", caller, id, err)
		return nil, err
	}

	s.metrics.RecordTodoMutation("toggle")
	return toggled, nil
}

// mutate runs the existence check for the scoped record and then apply. A
// record removed between the two calls is still reported as not found.
func (s *TodoService) mutate(
	ctx context.Context,
	caller domain.Caller,
	id string,
	apply func(filter todo.Filter, existing *todo.Todo) (*todo.Todo, error),
) (*todo.Todo, error) {
	existing, err := s.findOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	result, err := apply(todo.Scope(caller, id), existing)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: todoResource}
		}
		return nil, fmt.Errorf("writing todo %s: %w", id, err)
	}
	return result, nil
}

func (s *TodoService) findOwned(ctx context.Context, caller domain.Caller, id string) (*todo.Todo, error) {
	t, err := s.store.FindOne(ctx, todo.Scope(caller, id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: todoResource}
		}
		return nil, fmt.Errorf("finding todo %s: %w", id, err)
	}
	return t, nil
}

// logFailure logs expected outcomes (not found) at warn and everything else
// at error.
func (s *TodoService) logFailure(ctx context.Context, op string, caller domain.Caller, id string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "todo operation failed",
		slog.String("operation", op),
		slog.String("user_id", caller.ID),
		slog.String("todo_id", id),
		slog.Any("error", err),
	)
}
