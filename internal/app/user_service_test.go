package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
	"github.com/jsamuelsen11/todo-service/internal/platform/auth"
	"github.com/jsamuelsen11/todo-service/mocks"
)

type userFixture struct {
	svc     *UserService
	store   *mocks.MockUserStore
	tokens  *mocks.MockTokenIssuer
	hasher  auth.Hasher
	metrics *countingMetrics
}

func newUserService(t *testing.T) userFixture {
	t.Helper()
	f := userFixture{
		store:   mocks.NewMockUserStore(t),
		tokens:  mocks.NewMockTokenIssuer(t),
		hasher:  auth.NewHasher(bcrypt.MinCost),
		metrics: &countingMetrics{},
	}
	f.svc = NewUserService(f.store, f.hasher, f.tokens, f.metrics, discardLogger())
	return f
}

func storedUser(t *testing.T, h auth.Hasher, role domain.Role) *user.User {
	t.Helper()
	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	return &user.User{
		ID:           "u1",
		Name:         "Ada",
		Email:        "ada@example.com",
		Role:         role,
		PasswordHash: hash,
	}
}

// --- Register ---

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores hashed password with user role", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		f.store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Email == "ada@example.com" &&
				u.Role == domain.RoleUser &&
				u.PasswordHash != "" &&
				u.PasswordHash != "secret1"
		})).RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
			out := *u
			out.ID = "u1"
			return &out, nil
		})
		f.tokens.EXPECT().Issue(domain.Caller{ID: "u1", Role: domain.RoleUser}).Return("signed", nil)

		sess, err := f.svc.Register(context.Background(), "Ada", "Ada@Example.com", "secret1")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if sess.Token != "signed" {
			t.Errorf("Token = %q, want signed", sess.Token)
		}
		if sess.User.ID != "u1" {
			t.Errorf("User.ID = %q, want u1", sess.User.ID)
		}
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		f.store.EXPECT().Insert(mock.Anything, mock.Anything).
			Return(nil, &domain.ConflictError{Message: "User already exists"})

		_, err := f.svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
		var conflict *domain.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Register() error = %v, want *domain.ConflictError", err)
		}
	})

	t.Run("invalid payload never reaches the store", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		_, err := f.svc.Register(context.Background(), "", "nope", "1")
		var ve *domain.ValidationError
		if !errors.As(err, &ve) || len(ve.Fields) != 3 {
			t.Fatalf("Register() error = %v, want three field errors", err)
		}
		if len(f.metrics.validations) != 1 {
			t.Errorf("validations = %v, want one", f.metrics.validations)
		}
	})
}

// --- Login ---

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	t.Run("correct credentials issue a token", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)
		u := storedUser(t, f.hasher, domain.RoleAdmin)

		f.store.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(u, nil)
		f.tokens.EXPECT().Issue(domain.Caller{ID: "u1", Role: domain.RoleAdmin}).Return("signed", nil)

		sess, err := f.svc.Login(context.Background(), " ADA@example.com", "secret1")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if sess.Token != "signed" {
			t.Errorf("Token = %q, want signed", sess.Token)
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		f.store.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(storedUser(t, f.hasher, domain.RoleUser), nil)

		_, err := f.svc.Login(context.Background(), "ada@example.com", "wrong-pass")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Login() error = %v, want ErrUnauthorized", err)
		}
		if len(f.metrics.authFails) != 1 || f.metrics.authFails[0] != "bad_password" {
			t.Errorf("authFails = %v, want [bad_password]", f.metrics.authFails)
		}
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		f.store.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

		_, err := f.svc.Login(context.Background(), "ghost@example.com", "secret1")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Login() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("store failure is not unauthorized", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		f.store.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := f.svc.Login(context.Background(), "ada@example.com", "secret1")
		if errors.Is(err, domain.ErrUnauthorized) || !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Login() error = %v, want wrapped ErrUnavailable", err)
		}
	})
}

// --- Me ---

func TestUserService_Me(t *testing.T) {
	t.Parallel()

	t.Run("returns the caller's account", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)
		f.store.EXPECT().FindByID(mock.Anything, "u1").Return(&user.User{ID: "u1"}, nil)

		got, err := f.svc.Me(context.Background(), domain.Caller{ID: "u1", Role: domain.RoleUser})
		if err != nil {
			t.Fatalf("Me() error = %v", err)
		}
		if got.ID != "u1" {
			t.Errorf("ID = %q, want u1", got.ID)
		}
	})

	t.Run("deleted account is not found", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)
		f.store.EXPECT().FindByID(mock.Anything, "u1").Return(nil, domain.ErrNotFound)

		_, err := f.svc.Me(context.Background(), domain.Caller{ID: "u1", Role: domain.RoleUser})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Me() error = %v, want ErrNotFound", err)
		}
	})
}

// --- ListUsers ---

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	t.Run("admin sees every account", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)
		f.store.EXPECT().List(mock.Anything).Return([]user.User{{ID: "u1"}, {ID: "u2"}}, nil)

		got, err := f.svc.ListUsers(context.Background(), domain.Caller{ID: "root", Role: domain.RoleAdmin})
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		_, err := f.svc.ListUsers(context.Background(), domain.Caller{ID: "u1", Role: domain.RoleUser})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("ListUsers() error = %v, want ErrForbidden", err)
		}
	})
}

// --- EnsureAdmin ---

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Parallel()

	t.Run("creates when absent", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)

		f.store.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, domain.ErrNotFound)
		f.store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Role == domain.RoleAdmin
		})).RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
			out := *u
			out.ID = "admin-1"
			return &out, nil
		})

		u, created, err := f.svc.EnsureAdmin(context.Background(), "Admin User", "admin@example.com", "admin123")
		if err != nil {
			t.Fatalf("EnsureAdmin() error = %v", err)
		}
		if !created {
			t.Error("created = false, want true")
		}
		if u.ID != "admin-1" {
			t.Errorf("ID = %q, want admin-1", u.ID)
		}
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		t.Parallel()
		f := newUserService(t)
		existing := &user.User{ID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin}

		f.store.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(existing, nil)

		u, created, err := f.svc.EnsureAdmin(context.Background(), "Admin User", "admin@example.com", "admin123")
		if err != nil {
			t.Fatalf("EnsureAdmin() error = %v", err)
		}
		if created {
			t.Error("created = true, want false")
		}
		if u != existing {
			t.Error("returned a different account")
		}
	})
}
