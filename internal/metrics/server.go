package metrics

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const metricsReadHeaderTimeout = 5 * time.Second

// Enabled informa se addr liga o servidor de métricas.
func Enabled(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	switch strings.ToLower(addr) {
	case "off", "disabled", "false":
		return false
	}
	return true
}

// Handler expõe o registry padrão no formato Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve atende /metrics em addr até ctx ser cancelado. Devolve nil quando o
// endereço desativa as métricas.
func Serve(ctx context.Context, addr string) error {
	if !Enabled(addr) {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	srv := &http.Server{
		Addr:              strings.TrimSpace(addr),
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", srv.Addr).Msg("métricas ouvindo")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
