package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[handlers.IndexResponse](t, rec)
	if resp.Message != "Todo API is running!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Endpoints["todos"] != "/api/todos" || resp.Endpoints["health"] != "/health" {
		t.Errorf("endpoints = %v", resp.Endpoints)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.NotFound(rec, httptest.NewRequest(http.MethodGet, "/api/nope?x=1", nil))

	requireStatus(t, rec, http.StatusNotFound)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Message != "Route /api/nope?x=1 not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	handlers.MethodNotAllowed(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	requireStatus(t, rec, http.StatusMethodNotAllowed)
}
