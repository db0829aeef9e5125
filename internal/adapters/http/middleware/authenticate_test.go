package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/mocks"
)

// authFailures counts RecordAuthFailure calls by reason.
type authFailures struct {
	reasons map[string]int
	limited int
}

func newAuthFailures() *authFailures { return &authFailures{reasons: map[string]int{}} }

func (a *authFailures) RecordTodoMutation(string)       {}
func (a *authFailures) RecordValidationFailure(string)  {}
func (a *authFailures) RecordAuthFailure(reason string) { a.reasons[reason]++ }
func (a *authFailures) RecordRateLimited()              { a.limited++ }

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	if body.Success {
		t.Error("success = true, want false")
	}
	return body.Message
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verifier := mocks.NewMockTokenVerifier(t)
			metrics := newAuthFailures()
			called := false
			handler := middleware.Authenticate(verifier, metrics)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if called {
				t.Error("handler ran without a token")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if msg := decodeMessage(t, rec); msg != middleware.MsgNoToken {
				t.Errorf("message = %q, want %q", msg, middleware.MsgNoToken)
			}
			if metrics.reasons["no_token"] != 1 {
				t.Errorf("no_token failures = %d, want 1", metrics.reasons["no_token"])
			}
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("garbage").
		Return(domain.Caller{}, fmt.Errorf("parsing token: %w", domain.ErrUnauthorized))
	metrics := newAuthFailures()

	handler := middleware.Authenticate(verifier, metrics)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler ran with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if msg := decodeMessage(t, rec); msg != middleware.MsgTokenFailed {
		t.Errorf("message = %q, want %q", msg, middleware.MsgTokenFailed)
	}
	if metrics.reasons["token_failed"] != 1 {
		t.Errorf("token_failed failures = %d, want 1", metrics.reasons["token_failed"])
	}
}

func TestAuthenticate_StoresCaller(t *testing.T) {
	t.Parallel()

	want := domain.Caller{ID: "user-1", Role: domain.RoleUser}
	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("good-token").Return(want, nil)

	var got domain.Caller
	handler := middleware.Authenticate(verifier, nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = middleware.CallerFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got != want {
		t.Errorf("caller = %+v, want %+v", got, want)
	}
}

func TestCallerFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if caller := middleware.CallerFromContext(req.Context()); !caller.IsZero() {
		t.Errorf("caller = %+v, want zero", caller)
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		caller     *domain.Caller
		wantStatus int
	}{
		{name: "admin passes", caller: &domain.Caller{ID: "a", Role: domain.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "user rejected", caller: &domain.Caller{ID: "u", Role: domain.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "anonymous rejected", caller: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", http.NoBody)
			if tt.caller != nil {
				req = req.WithContext(middleware.WithCaller(req.Context(), *tt.caller))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusForbidden {
				if msg := decodeMessage(t, rec); msg != middleware.MsgNotAdmin {
					t.Errorf("message = %q, want %q", msg, middleware.MsgNotAdmin)
				}
			}
		})
	}
}
