package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService: account registration, password
// login, the current-user lookup, and the admin user listing.
type UserService struct {
	store   ports.UserStore
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	metrics ports.DomainMetrics
	logger  *slog.Logger
}

// NewUserService creates a UserService. A nil metrics or logger is replaced
// with a no-op implementation.
func NewUserService(
	store ports.UserStore,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	metrics ports.DomainMetrics,
	logger *slog.Logger,
) *UserService {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		metrics: metrics,
		logger:  logger,
	}
}

// Register creates a user-role account and signs a token for it.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*ports.Session, error) {
	reg, err := user.ValidateRegistration(name, email, password)
	if err != nil {
		s.metrics.RecordValidationFailure("register")
		return nil, err
	}

	s.logger.InfoContext(ctx, "registering user")

	u, err := s.create(ctx, reg, domain.RoleUser)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.session(u)
}

// Login checks credentials and signs a token. Unknown emails and wrong
// passwords produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	creds, err := user.ValidateCredentials(email, password)
	if err != nil {
		s.metrics.RecordValidationFailure("login")
		return nil, err
	}

	u, err := s.store.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.RecordAuthFailure("unknown_email")
			return nil, domain.ErrUnauthorized
		}
		s.logger.ErrorContext(ctx, "failed to look up user",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("finding user: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, creds.Password); err != nil {
		s.metrics.RecordAuthFailure("bad_password")
		s.logger.WarnContext(ctx, "password mismatch", slog.String("user_id", u.ID))
		return nil, domain.ErrUnauthorized
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID))
	return s.session(u)
}

// Me returns the account behind caller.
func (s *UserService) Me(ctx context.Context, caller domain.Caller) (*user.User, error) {
	if caller.IsZero() {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.store.FindByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "User"}
		}
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "Me"),
			slog.String("user_id", caller.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("finding user %s: %w", caller.ID, err)
	}
	return u, nil
}

// ListUsers returns every account. Only admins may call it.
func (s *UserService) ListUsers(ctx context.Context, caller domain.Caller) ([]user.User, error) {
	switch {
	case caller.IsZero():
		return nil, domain.ErrUnauthorized
	case !caller.IsAdmin():
		return nil, domain.ErrForbidden
	}

	s.logger.InfoContext(ctx, "listing users", slog.String("user_id", caller.ID))

	users, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users",
			slog.String("operation", "ListUsers"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// EnsureAdmin creates an admin account for email unless an account with that
// email already exists, in which case the existing account is returned
// unchanged.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (*user.User, bool, error) {
	reg, err := user.ValidateRegistration(name, email, password)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.store.FindByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "admin user already exists", slog.String("user_id", existing.ID))
		return existing, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, false, fmt.Errorf("finding admin: %w", err)
	}

	u, err := s.create(ctx, reg, domain.RoleAdmin)
	if err != nil {
		return nil, false, err
	}

	s.logger.InfoContext(ctx, "admin user created", slog.String("user_id", u.ID))
	return u, true, nil
}

func (s *UserService) create(ctx context.Context, reg user.Registration, role domain.Role) (*user.User, error) {
	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.store.Insert(ctx, &user.User{
		Name:         reg.Name,
		Email:        reg.Email,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func (s *UserService) session(u *user.User) (*ports.Session, error) {
	token, err := s.tokens.Issue(u.Caller())
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &ports.Session{Token: token, User: u}, nil
}
