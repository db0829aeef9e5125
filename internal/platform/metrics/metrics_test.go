package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen11/todo-service/internal/platform/metrics"
)

func TestCollector_Counters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.RecordTodoMutation("create")
	c.RecordTodoMutation("create")
	c.RecordTodoMutation("toggle")
	c.RecordValidationFailure("update")
	c.RecordAuthFailure("bad_password")
	c.RecordRateLimited()

	tests := []struct {
		name string
		want float64
		got  float64
	}{
		{"create mutations", 2, counterValue(t, reg, "todo_service_todo_mutations_total", "operation", "create")},
		{"toggle mutations", 1, counterValue(t, reg, "todo_service_todo_mutations_total", "operation", "toggle")},
		{"update validation failures", 1, counterValue(t, reg, "todo_service_validation_failures_total", "operation", "update")},
		{"bad password auth failures", 1, counterValue(t, reg, "todo_service_auth_failures_total", "reason", "bad_password")},
		{"rate limited", 1, counterValue(t, reg, "todo_service_rate_limited_total", "", "")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCollector_RegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewCollector(reg)

	defer func() {
		if recover() == nil {
			t.Error("second NewCollector on the same registry did not panic")
		}
	}()
	_ = metrics.NewCollector(reg)
}

func TestHandler_ServesMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.RecordTodoMutation("delete")

	w := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), `todo_service_todo_mutations_total{operation="delete"} 1`) {
		t.Errorf("body does not contain the delete mutation counter:\n%s", body)
	}
}

// counterValue reads one counter sample from reg. An empty label selects the
// unlabelled counter.
func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if label == "" {
				return m.GetCounter().GetValue()
			}
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{%s=%q} not found", name, label, value)
	return 0
}
