package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEnabled(t *testing.T) {
	for _, addr := range []string{"", "  ", "off", "OFF", "disabled", "false"} {
		if Enabled(addr) {
			t.Fatalf("expected %q to disable metrics", addr)
		}
	}
	if !Enabled(":9090") {
		t.Fatal("expected :9090 to enable metrics")
	}
}

func TestServeDisabledReturnsImmediately(t *testing.T) {
	if err := Serve(context.Background(), "off"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandlerExposesHashMetrics(t *testing.T) {
	HashRequestsTotal.WithLabelValues("argon2", "ok").Inc()
	HashDuration.WithLabelValues("argon2id").Observe(0.02)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		`hashsvc_hash_requests_total{family="argon2",outcome="ok"}`,
		`hashsvc_hash_duration_seconds_bucket{algorithm="argon2id"`,
		"# HELP hashsvc_hash_requests_total Requisições de hash por família",
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}
}
