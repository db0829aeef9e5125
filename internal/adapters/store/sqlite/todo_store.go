package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.TodoStore = (*TodoStore)(nil)

const todoColumns = "id, user_id, title, description, priority, completed, due_date, created_at, updated_at"

// TodoStore implements ports.TodoStore on the todos table.
type TodoStore struct {
	db  *sql.DB
	now func() time.Time
}

// Find returns one page of matching todos, newest first. Ties on creation
// time are broken by id so pages never overlap.
func (s *TodoStore) Find(ctx context.Context, filter todo.Filter, page todo.Page) ([]todo.Todo, error) {
	where, args := whereClause(filter)
	query := "SELECT " + todoColumns + " FROM todos" + where +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, page.Limit, page.Skip())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	items := make([]todo.Todo, 0, page.Limit)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos: %w", err)
	}
	return items, nil
}

// Count returns the number of todos matching filter.
func (s *TodoStore) Count(ctx context.Context, filter todo.Filter) (int64, error) {
	where, args := whereClause(filter)

	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}
	return n, nil
}

// FindOne returns the todo matching filter.
func (s *TodoStore) FindOne(ctx context.Context, filter todo.Filter) (*todo.Todo, error) {
	where, args := whereClause(filter)
	row := s.db.QueryRowContext(ctx, "SELECT "+todoColumns+" FROM todos"+where+" LIMIT 1", args...)

	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return t, err
}

// Insert stores t with a new UUID and fresh timestamps.
func (s *TodoStore) Insert(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	out := *t
	out.ID = uuid.NewString()
	out.CreatedAt = now
	out.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO todos ("+todoColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		out.ID, out.Owner, out.Title, out.Description, string(out.Priority),
		out.Completed, nullMillis(out.DueDate), toMillis(out.CreatedAt), toMillis(out.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}
	return &out, nil
}

// UpdateOne applies patch to the todo matching filter and returns the row
// as written.
func (s *TodoStore) UpdateOne(ctx context.Context, filter todo.Filter, patch todo.Input) (*todo.Todo, error) {
	sets := []string{"updated_at = ?"}
	args := []any{toMillis(s.now())}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if patch.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, toMillis(*patch.DueDate))
	}

	where, whereArgs := whereClause(filter)
	query := "UPDATE todos SET " + strings.Join(sets, ", ") + where + " RETURNING " + todoColumns

	t, err := scanTodo(s.db.QueryRowContext(ctx, query, append(args, whereArgs...)...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return t, err
}

// DeleteOne removes the todo matching filter.
func (s *TodoStore) DeleteOne(ctx context.Context, filter todo.Filter) error {
	where, args := whereClause(filter)

	res, err := s.db.ExecContext(ctx, "DELETE FROM todos"+where, args...)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// whereClause renders filter as a WHERE clause. The owner predicate is
// always present, even when empty, so an unscoped filter matches nothing.
func whereClause(filter todo.Filter) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{filter.Owner}

	if filter.ID != "" {
		conds = append(conds, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(filter.Priority))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*todo.Todo, error) {
	var (
		t         todo.Todo
		priority  string
		due       sql.NullInt64
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(&t.ID, &t.Owner, &t.Title, &t.Description, &priority,
		&t.Completed, &due, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning todo: %w", err)
	}

	t.Priority = todo.Priority(priority)
	if due.Valid {
		d := fromMillis(due.Int64)
		t.DueDate = &d
	}
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return &t, nil
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}
