package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func TestRequestIDPropagatesToContext(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimiddleware.GetReqID(r.Context())
	}))

	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{"reaproveita", "req-1", true},
		{"gera-quando-vazio", "", false},
		{"gera-quando-longo", strings.Repeat("a", maxRequestIDLen+1), false},
		{"gera-quando-invalido", "com espaço", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(HeaderRequestID, tc.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if seen == "" || rec.Header().Get(HeaderRequestID) != seen {
				t.Fatalf("context id %q differs from header %q", seen, rec.Header().Get(HeaderRequestID))
			}
			if tc.reuse && seen != tc.incoming {
				t.Fatalf("expected %q got %q", tc.incoming, seen)
			}
			if !tc.reuse && seen == tc.incoming {
				t.Fatalf("expected generated id, got %q", seen)
			}
		})
	}
}

func TestRecoverWritesEnvelope(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/argon2", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"INTERNAL"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Fatal("panic value leaked to client")
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"exato", []string{"https://app.exemplo.com.br"}, "https://app.exemplo.com.br", "https://app.exemplo.com.br"},
		{"subdominio", []string{"*.exemplo.com.br"}, "https://painel.exemplo.com.br", "https://painel.exemplo.com.br"},
		{"raiz-do-wildcard", []string{"*.exemplo.com.br"}, "https://exemplo.com.br", ""},
		{"qualquer", []string{"*"}, "https://outro.com", "*"},
		{"negado", []string{"https://app.exemplo.com.br"}, "https://outro.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/scrypt", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			CORS(tc.allowed)(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusTeapot {
				t.Fatalf("expected request to reach handler, got %d", rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestRoutePatternUnmatched(t *testing.T) {
	if got := routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)); got != "unmatched" {
		t.Fatalf("expected unmatched got %s", got)
	}
}
