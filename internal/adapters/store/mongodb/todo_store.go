package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.TodoStore = (*TodoStore)(nil)

// newestFirst orders by creation time, breaking ties on _id so pages are
// stable.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// TodoStore implements ports.TodoStore on the todos collection.
type TodoStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Find returns one page of matching todos, newest first.
func (s *TodoStore) Find(ctx context.Context, filter todo.Filter, page todo.Page) ([]todo.Todo, error) {
	q, err := todoFilter(filter)
	if errors.Is(err, errNoMatch) {
		return []todo.Todo{}, nil
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := s.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("finding todos: %w", err)
	}

	var docs []todoDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding todos: %w", err)
	}

	items := make([]todo.Todo, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].toDomain())
	}
	return items, nil
}

// Count returns the number of todos matching filter.
func (s *TodoStore) Count(ctx context.Context, filter todo.Filter) (int64, error) {
	q, err := todoFilter(filter)
	if errors.Is(err, errNoMatch) {
		return 0, nil
	}

	n, err := s.coll.CountDocuments(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}
	return n, nil
}

// FindOne returns the todo matching filter. A malformed id is reported as
// not found.
func (s *TodoStore) FindOne(ctx context.Context, filter todo.Filter) (*todo.Todo, error) {
	q, err := todoFilter(filter)
	if errors.Is(err, errNoMatch) {
		return nil, domain.ErrNotFound
	}

	var doc todoDocument
	if err := s.coll.FindOne(ctx, q).Decode(&doc); err != nil {
		return nil, translate(err, "finding todo")
	}
	t := doc.toDomain()
	return &t, nil
}

// Insert stores t and returns it with its ObjectID and timestamps.
func (s *TodoStore) Insert(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	withTimes := *t
	withTimes.CreatedAt = now
	withTimes.UpdatedAt = now

	doc, err := newTodoDocument(&withTimes)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: invalid owner %q: %w", t.Owner, err)
	}

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		withTimes.ID = id.Hex()
	}
	return &withTimes, nil
}

// UpdateOne applies patch with findOneAndUpdate and returns the document
// after the update.
func (s *TodoStore) UpdateOne(ctx context.Context, filter todo.Filter, patch todo.Input) (*todo.Todo, error) {
	q, err := todoFilter(filter)
	if errors.Is(err, errNoMatch) {
		return nil, domain.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc todoDocument
	err = s.coll.FindOneAndUpdate(ctx, q, todoUpdate(patch, s.now().UTC()), opts).Decode(&doc)
	if err != nil {
		return nil, translate(err, "updating todo")
	}
	t := doc.toDomain()
	return &t, nil
}

// DeleteOne removes the todo matching filter.
func (s *TodoStore) DeleteOne(ctx context.Context, filter todo.Filter) error {
	q, err := todoFilter(filter)
	if errors.Is(err, errNoMatch) {
		return domain.ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, q)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// translate maps a missing document onto domain.ErrNotFound and wraps
// everything else.
func translate(err error, op string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
