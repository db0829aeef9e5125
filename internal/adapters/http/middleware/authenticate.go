package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Identity failure messages.
const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"
	MsgNotAdmin    = "Not authorized as an admin"
)

const bearerPrefix = "bearer "

// callerKey is the context key for the verified caller.
type callerKey struct{}

// WithCaller returns a new context carrying the verified caller.
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFromContext returns the caller stored by Authenticate, or the zero
// Caller if the request was not authenticated.
func CallerFromContext(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(callerKey{}).(domain.Caller)
	return caller
}

// Authenticate returns middleware that requires a valid bearer token. The
// verified caller is stored in the request context and its id is added to
// the request logger and the active span. A missing token and a token that
// fails verification are both rejected with 401 before the handler runs.
func Authenticate(verifier ports.TokenVerifier, metrics ports.DomainMetrics) func(http.Handler) http.Handler {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				metrics.RecordAuthFailure("no_token")
				dto.WriteFailure(w, r, http.StatusUnauthorized, MsgNoToken)
				return
			}

			caller, err := verifier.Verify(token)
			if err != nil {
				metrics.RecordAuthFailure("token_failed")
				logging.FromContext(ctx).WarnContext(ctx, "token verification failed",
					slog.Any("error", err),
				)
				dto.WriteFailure(w, r, http.StatusUnauthorized, MsgTokenFailed)
				return
			}

			trace.SpanFromContext(ctx).SetAttributes(attribute.String("enduser.id", caller.ID))
			ctx = WithCaller(ctx, caller)
			ctx = logging.With(ctx, slog.String("user_id", caller.ID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns middleware that lets only admin callers through. It
// must run after Authenticate.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !CallerFromContext(r.Context()).IsAdmin() {
				dto.WriteFailure(w, r, http.StatusForbidden, MsgNotAdmin)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
