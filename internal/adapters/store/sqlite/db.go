// Package sqlite implements the persistence gateway on an embedded SQLite
// database. It backs the local profile and the end-to-end tests; production
// deployments use the mongo package.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

//go:embed schema.sql
var schemaFS embed.FS

var _ ports.HealthChecker = (*Client)(nil)

// Client owns the database handle shared by the todo and user stores.
type Client struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema. Writes are serialized through a single connection.
func Open(ctx context.Context, path string) (*Client, error) {
	if path == "" {
		return nil, errors.New("sqlite: path is required")
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := applySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db: db, now: time.Now}, nil
}

func applySchema(ctx context.Context, db *sql.DB) error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Todos returns the todo store backed by this database.
func (c *Client) Todos() *TodoStore {
	return &TodoStore{db: c.db, now: c.now}
}

// Users returns the user store backed by this database.
func (c *Client) Users() *UserStore {
	return &UserStore{db: c.db, now: c.now}
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close releases the database handle.
func (c *Client) Close() error {
	return c.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		(se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE"))
}
