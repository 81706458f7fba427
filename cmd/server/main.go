package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/config"
	"github.com/mmynk/topten/internal/lists"
	"github.com/mmynk/topten/internal/service"
	"github.com/mmynk/topten/internal/storage"
	"github.com/mmynk/topten/internal/storage/backend"
	"github.com/mmynk/topten/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger := logging.Configure(cfg.LogLevel, cfg.LogFormat)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	kv, err := backend.Open(openCtx, cfg.Storage)
	cancel()
	if err != nil {
		return err
	}
	// Every write is already durable; Close releases connections and file handles.
	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	store := storage.NewListStore(kv)

	resolver, err := newResolver(cfg.Identity, store)
	if err != nil {
		return err
	}
	slog.Info("Identity configured", "mode", cfg.Identity.Mode)

	svc := lists.NewService(store, resolver, auth.NewSecretHasher(cfg.OwnerSecretCost), lists.WithLogger(logger))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := service.NewRouter(
		service.NewListService(svc, service.WithSecureCookies(cfg.Identity.SecureCookies)),
		service.RouterConfig{
			CORSOrigins: cfg.CORSOrigins,
			Registry:    registry,
			Health:      kv,
		},
	)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSecs) * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting",
			"address", server.Addr,
			"url", fmt.Sprintf("http://localhost%s", server.Addr),
			"storage", cfg.Storage.Backend,
		)
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Graceful shutdown error", "error", err)
	}
	return nil
}

func newResolver(cfg config.IdentityConfig, store *storage.ListStore) (auth.Resolver, error) {
	switch cfg.Mode {
	case config.IdentityExternal:
		return auth.NewExternalResolver(cfg.ProviderSecret), nil
	case config.IdentityCookie:
		return auth.NewCookieResolver(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour), nil
	case config.IdentityToken:
		return auth.NewTokenResolver(store), nil
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Mode)
	}
}
