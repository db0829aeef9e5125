package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/domain/user"
)

const (
	testTodoID = "665f1c2e9b1d4a3f8c0e1a2b"
	testUserID = "665f1c2e9b1d4a3f8c0e0001"
)

var (
	testTime   = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testCaller = domain.Caller{ID: testUserID, Role: domain.RoleUser}
	testAdmin  = domain.Caller{ID: "665f1c2e9b1d4a3f8c0e0099", Role: domain.RoleAdmin}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asCaller attaches a verified identity the way middleware.Authenticate does.
func asCaller(r *http.Request, caller domain.Caller) *http.Request {
	return r.WithContext(middleware.WithCaller(r.Context(), caller))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          testTodoID,
		Owner:       testUserID,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Priority:    todo.PriorityMedium,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validUser() user.User {
	return user.User{
		ID:           testUserID,
		Name:         "Ada",
		Email:        "ada@example.com",
		Role:         domain.RoleUser,
		PasswordHash: "$2a$04$not-a-real-hash",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
