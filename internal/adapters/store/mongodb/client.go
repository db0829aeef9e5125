// Package mongodb implements the persistence gateway on MongoDB. Todos live in
// the "todos" collection and accounts in "users"; both use ObjectID keys and
// the owner reference is stored as an ObjectID in the "user" field.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const (
	todosCollection = "todos"
	usersCollection = "users"
)

var _ ports.HealthChecker = (*Client)(nil)

// Options configures the connection.
type Options struct {
	URI      string
	Database string

	// Timeout bounds every operation issued through the client. Cancellation
	// and deadlines for store calls are delegated to the driver through it.
	Timeout time.Duration

	// ConnectTimeout bounds the initial connection and ping.
	ConnectTimeout time.Duration
}

// Client owns the process-lifetime driver handle shared by both stores.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// Connect dials MongoDB, verifies the connection with a ping, and ensures the
// indexes both stores rely on.
func Connect(ctx context.Context, opts Options) (*Client, error) {
	if opts.URI == "" {
		return nil, errors.New("mongo: uri is required")
	}
	if opts.Database == "" {
		return nil, errors.New("mongo: database is required")
	}

	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.Timeout > 0 {
		clientOpts.SetTimeout(opts.Timeout)
	}
	if opts.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(opts.ConnectTimeout).SetServerSelectionTimeout(opts.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	c := &Client{client: client, db: client.Database(opts.Database), now: time.Now}

	if err := c.HealthCheck(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	if err := c.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return c, nil
}

func (c *Client) ensureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(todosCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("creating todos index: %w", err)
	}

	_, err = c.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating users index: %w", err)
	}
	return nil
}

// Todos returns the todo store.
func (c *Client) Todos() *TodoStore {
	return &TodoStore{coll: c.db.Collection(todosCollection), now: c.now}
}

// Users returns the user store.
func (c *Client) Users() *UserStore {
	return &UserStore{coll: c.db.Collection(usersCollection), now: c.now}
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string {
	return "mongo"
}

// HealthCheck pings the primary.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the server.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
