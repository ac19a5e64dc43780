package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gestaozabele/hashsvc/internal/config"
	"github.com/gestaozabele/hashsvc/internal/hashing"
	internalhttp "github.com/gestaozabele/hashsvc/internal/http"
	"github.com/gestaozabele/hashsvc/internal/logging"
	"github.com/gestaozabele/hashsvc/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("api encerrada com erro")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logging.Setup(cfg.LogFormat, cfg.LogLevel, os.Stdout)

	hasher := hashing.New(hashing.WithLimits(cfg.Limits()))
	handler := internalhttp.NewRouter(cfg, hasher)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Msgf("API ouvindo em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := metrics.Serve(gctx, cfg.MetricsAddr); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("encerrando...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
