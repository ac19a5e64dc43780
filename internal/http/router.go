package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gestaozabele/hashsvc/internal/config"
	"github.com/gestaozabele/hashsvc/internal/hashing"
	httpmiddleware "github.com/gestaozabele/hashsvc/internal/http/middleware"
)

const defaultMaxBodyBytes = 64 * 1024

// Handler concentra as dependências dos endpoints.
type Handler struct {
	hasher       *hashing.Hasher
	maxBodyBytes int64
}

// NewRouter devolve roteador configurado.
func NewRouter(cfg *config.Config, hasher *hashing.Hasher) http.Handler {
	h := &Handler{
		hasher:       hasher,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = defaultMaxBodyBytes
	}

	r := chi.NewRouter()

	r.Use(httpmiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httpmiddleware.Logging)
	r.Use(httpmiddleware.Recover)
	r.Use(httpmiddleware.CORS(cfg.AllowOrigins))
	r.Use(httpmiddleware.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, CodeNotFound, "rota não encontrada", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "método não permitido", nil)
	})

	r.Get("/health", h.Health)
	r.Post("/argon2", h.HashArgon2)
	r.Post("/scrypt", h.HashScrypt)

	return r
}

// Health responde status simples.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
