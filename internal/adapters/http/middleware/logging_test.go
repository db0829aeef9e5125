package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/todos", http.NoBody))

	output := buf.String()
	for _, want := range []string{"request started", "request completed", "method=POST", "path=/api/todos", "status=201", "duration="} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestLogging_LevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{name: "listed", path: "/api/todos", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "foreign todo", path: "/api/todos/t-1", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "no token", path: "/api/auth/me", status: http.StatusUnauthorized, wantLevel: "level=WARN"},
		{name: "store down", path: "/api/todos", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			var completed string
			for _, line := range strings.Split(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completed = line
				}
			}
			if !strings.Contains(completed, tt.wantLevel) {
				t.Errorf("completion line = %q, want %s", completed, tt.wantLevel)
			}
		})
	}
}

func TestLogging_CorrelatesAuthenticatedCaller(t *testing.T) {
	t.Parallel()

	verifier := mocks.NewMockTokenVerifier(t)
	verifier.EXPECT().Verify("tok").Return(domain.Caller{ID: "user-42", Role: domain.RoleUser}, nil)

	var buf bytes.Buffer
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
		middleware.Authenticate(verifier, nil),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("todo listed")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/todos", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("X-Request-ID", "req-list")
	req.Header.Set("X-Correlation-ID", "corr-list")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "todo listed") {
			handlerLine = line
		}
	}
	for _, want := range []string{"request_id=req-list", "correlation_id=corr-list", "user_id=user-42"} {
		if !strings.Contains(handlerLine, want) {
			t.Errorf("handler log line missing %q: %q", want, handlerLine)
		}
	}
}

func TestLogging_DebugHeadersRedactToken(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", http.NoBody)
	req.Header.Set("Authorization", "Bearer very-secret-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	if !strings.Contains(output, "request headers") {
		t.Fatalf("debug header line missing:\n%s", output)
	}
	if strings.Contains(output, "very-secret-token") {
		t.Errorf("log output leaked bearer token:\n%s", output)
	}
}

func TestLogging_QuietAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "text", &buf)
	handler := middleware.Logging(logger)(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	output := buf.String()
	if strings.Contains(output, "request started") || strings.Contains(output, "request headers") {
		t.Errorf("debug lines logged at info level:\n%s", output)
	}
	if !strings.Contains(output, "request completed") {
		t.Errorf("completion line missing:\n%s", output)
	}
}
