// Package todo holds the Todo entity and the pure request-pipeline stages
// that every todo operation runs through: payload validation, ownership
// scoping, and pagination arithmetic.
package todo

import "time"

// Todo is a to-do record owned by exactly one user.
//
// ID, Owner and CreatedAt are assigned once at creation and never change.
// UpdatedAt is refreshed by the store on every mutation.
type Todo struct {
	ID          string
	Owner       string
	Title       string
	Description string
	Priority    Priority
	Completed   bool
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New builds an unsaved Todo from a validated create input. The owner is
// always the caller's identity; ownership never comes from the payload.
func New(owner string, in Input) *Todo {
	t := &Todo{
		Owner:    owner,
		Priority: PriorityMedium,
	}
	t.Apply(in)
	return t
}

// Apply copies every field present in the input onto the todo. Identity,
// ownership and timestamps are not touched.
func (t *Todo) Apply(in Input) {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.DueDate != nil {
		due := *in.DueDate
		t.DueDate = &due
	}
}

// Input is a normalized, validated todo payload. Nil means the field was
// absent from the request and must be left unchanged.
type Input struct {
	Title       *string
	Description *string
	Priority    *Priority
	Completed   *bool
	DueDate     *time.Time
}

// IsEmpty reports whether the input carries no field at all.
func (in Input) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Priority == nil &&
		in.Completed == nil && in.DueDate == nil
}

// ToggleInput returns the input that flips the completion flag of t.
func ToggleInput(t *Todo) Input {
	flipped := !t.Completed
	return Input{Completed: &flipped}
}
