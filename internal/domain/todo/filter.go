package todo

import "github.com/jsamuelsen11/todo-service/internal/domain"

// Filter is the store query every todo operation runs with. Owner is always
// set for scoped operations; ID is set when a single record is targeted.
// Zero-value Completed and Priority mean "no filter" for that dimension.
type Filter struct {
	ID        string
	Owner     string
	Completed *bool
	Priority  Priority
}

// Scope derives the store filter for a caller. Without a record id the
// filter selects every record the caller owns; with one it selects that
// record only if the caller owns it, so a foreign record looks exactly like
// a missing one.
func Scope(caller domain.Caller, id string) Filter {
	return Filter{ID: id, Owner: caller.ID}
}

// Criteria holds the optional list filters a caller may add on top of the
// ownership scope.
type Criteria struct {
	Completed *bool
	Priority  Priority
}

// Narrow returns a copy of f restricted by the given criteria.
func (f Filter) Narrow(c Criteria) Filter {
	f.Completed = c.Completed
	f.Priority = c.Priority
	return f
}
