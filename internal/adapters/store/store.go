// Package store opens the configured persistence backend and wraps it in the
// circuit-breaker guard shared by the todo and user stores.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/adapters/store/guard"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/mongodb"
	"github.com/jsamuelsen11/todo-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Backend is an open, guarded persistence backend.
type Backend struct {
	Todos ports.TodoStore
	Users ports.UserStore

	// Checkers report the database connection and the breaker state.
	Checkers []ports.HealthChecker

	close func(context.Context) error
}

// Close releases the underlying connection.
func (b *Backend) Close(ctx context.Context) error {
	return b.close(ctx)
}

// Open connects to the backend selected by cfg.Driver. If metrics is nil,
// store metrics are not recorded.
func Open(ctx context.Context, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, mongodb.Options{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			Timeout:        cfg.Mongo.Timeout,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to mongo: %w", err)
		}
		b := guard.NewBreaker(&cfg.CircuitBreaker, client.Name(), metrics, logger)
		return &Backend{
			Todos:    guard.NewTodoStore(client.Todos(), b),
			Users:    guard.NewUserStore(client.Users(), b),
			Checkers: []ports.HealthChecker{client, b},
			close:    client.Close,
		}, nil

	case config.DriverSQLite:
		client, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		b := guard.NewBreaker(&cfg.CircuitBreaker, client.Name(), metrics, logger)
		return &Backend{
			Todos:    guard.NewTodoStore(client.Todos(), b),
			Users:    guard.NewUserStore(client.Users(), b),
			Checkers: []ports.HealthChecker{client, b},
			close:    func(context.Context) error { return client.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
