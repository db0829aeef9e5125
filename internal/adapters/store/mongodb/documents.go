package mongodb

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
)

// errNoMatch marks a filter that can match no document because an id in it
// is not a valid ObjectID.
var errNoMatch = errors.New("filter cannot match")

type todoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	Completed   bool               `bson:"completed"`
	DueDate     *time.Time         `bson:"dueDate,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *todoDocument) toDomain() todo.Todo {
	t := todo.Todo{
		ID:          d.ID.Hex(),
		Owner:       d.User.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Priority:    todo.Priority(d.Priority),
		Completed:   d.Completed,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.DueDate != nil {
		due := d.DueDate.UTC()
		t.DueDate = &due
	}
	return t
}

func newTodoDocument(t *todo.Todo) (*todoDocument, error) {
	owner, err := primitive.ObjectIDFromHex(t.Owner)
	if err != nil {
		return nil, err
	}
	return &todoDocument{
		User:        owner,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}, nil
}

// todoFilter renders f as a query document. The owner predicate is always
// present.
func todoFilter(f todo.Filter) (bson.D, error) {
	owner, err := primitive.ObjectIDFromHex(f.Owner)
	if err != nil {
		return nil, errNoMatch
	}
	q := bson.D{{Key: "user", Value: owner}}

	if f.ID != "" {
		id, err := primitive.ObjectIDFromHex(f.ID)
		if err != nil {
			return nil, errNoMatch
		}
		q = append(q, bson.E{Key: "_id", Value: id})
	}
	if f.Completed != nil {
		q = append(q, bson.E{Key: "completed", Value: *f.Completed})
	}
	if f.Priority != "" {
		q = append(q, bson.E{Key: "priority", Value: string(f.Priority)})
	}
	return q, nil
}

// todoUpdate renders patch as a $set document that always refreshes
// updatedAt.
func todoUpdate(patch todo.Input, now time.Time) bson.D {
	set := bson.D{{Key: "updatedAt", Value: now}}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Priority != nil {
		set = append(set, bson.E{Key: "priority", Value: string(*patch.Priority)})
	}
	if patch.Completed != nil {
		set = append(set, bson.E{Key: "completed", Value: *patch.Completed})
	}
	if patch.DueDate != nil {
		set = append(set, bson.E{Key: "dueDate", Value: *patch.DueDate})
	}
	return bson.D{{Key: "$set", Value: set}}
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *userDocument) toDomain() user.User {
	return user.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Role:         domain.Role(d.Role),
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}
