package todo

import (
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

func TestScope(t *testing.T) {
	t.Parallel()

	caller := domain.Caller{ID: "user-a", Role: domain.RoleUser}

	t.Run("without record id selects owner only", func(t *testing.T) {
		t.Parallel()
		got := Scope(caller, "")
		if got != (Filter{Owner: "user-a"}) {
			t.Errorf("Scope() = %+v, want owner-only filter", got)
		}
	})

	t.Run("with record id selects id and owner", func(t *testing.T) {
		t.Parallel()
		got := Scope(caller, "t1")
		if got.ID != "t1" || got.Owner != "user-a" {
			t.Errorf("Scope() = %+v, want ID=t1 Owner=user-a", got)
		}
	})

	t.Run("admin is scoped like any caller", func(t *testing.T) {
		t.Parallel()
		admin := domain.Caller{ID: "root", Role: domain.RoleAdmin}
		got := Scope(admin, "t1")
		if got.Owner != "root" {
			t.Errorf("Scope(admin).Owner = %q, want %q", got.Owner, "root")
		}
	})
}

func TestFilter_Narrow(t *testing.T) {
	t.Parallel()

	done := true
	base := Filter{Owner: "user-a"}
	got := base.Narrow(Criteria{Completed: &done, Priority: PriorityHigh})

	if got.Owner != "user-a" {
		t.Errorf("Owner = %q, want ownership preserved", got.Owner)
	}
	if got.Completed == nil || !*got.Completed {
		t.Errorf("Completed = %v, want true", got.Completed)
	}
	if got.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want %q", got.Priority, PriorityHigh)
	}
	if base.Completed != nil {
		t.Error("Narrow mutated the receiver")
	}
}
