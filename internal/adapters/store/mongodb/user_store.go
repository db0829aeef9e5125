package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

var _ ports.UserStore = (*UserStore)(nil)

// UserStore implements ports.UserStore on the users collection. Email
// uniqueness is enforced by a unique index.
type UserStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Insert stores u. A duplicate email is a conflict.
func (s *UserStore) Insert(ctx context.Context, u *user.User) (*user.User, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	out := *u
	out.CreatedAt = now
	out.UpdatedAt = now
	if out.Role == "" {
		out.Role = domain.RoleUser
	}

	res, err := s.coll.InsertOne(ctx, userDocument{
		Name:      out.Name,
		Email:     out.Email,
		Role:      string(out.Role),
		Password:  out.PasswordHash,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ConflictError{Message: "User already exists"}
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = id.Hex()
	}
	return &out, nil
}

// FindByEmail looks up a user by email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// FindByID looks up a user by id. A malformed id is reported as not found.
func (s *UserStore) FindByID(ctx context.Context, id string) (*user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

// List returns every user, oldest first.
func (s *UserStore) List(ctx context.Context) ([]user.User, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}

	users := make([]user.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}
	return users, nil
}

func (s *UserStore) findOne(ctx context.Context, q bson.D) (*user.User, error) {
	var doc userDocument
	if err := s.coll.FindOne(ctx, q).Decode(&doc); err != nil {
		return nil, translate(err, "finding user")
	}
	u := doc.toDomain()
	return &u, nil
}
