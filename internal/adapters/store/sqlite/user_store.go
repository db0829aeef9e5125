package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.UserStore = (*UserStore)(nil)

const userColumns = "id, name, email, role, password_hash, created_at, updated_at"

// UserStore implements ports.UserStore on the users table.
type UserStore struct {
	db  *sql.DB
	now func() time.Time
}

// Insert stores u with a new UUID. A duplicate email is a conflict.
func (s *UserStore) Insert(ctx context.Context, u *user.User) (*user.User, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	out := *u
	out.ID = uuid.NewString()
	out.CreatedAt = now
	out.UpdatedAt = now
	if out.Role == "" {
		out.Role = domain.RoleUser
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		out.ID, out.Name, out.Email, string(out.Role), out.PasswordHash,
		toMillis(out.CreatedAt), toMillis(out.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{Message: "User already exists"}
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return &out, nil
}

// FindByEmail looks up a user by email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.findOne(ctx, "email = ?", email)
}

// FindByID looks up a user by id.
func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	return s.findOne(ctx, "id = ?", id)
}

// List returns every user, oldest first.
func (s *UserStore) List(ctx context.Context) ([]user.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (s *UserStore) findOne(ctx context.Context, cond string, arg any) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+cond, arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		u         user.User
		role      string
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.Role = domain.Role(role)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}
