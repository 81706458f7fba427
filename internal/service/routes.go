package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/topten/internal/auth"
	"github.com/mmynk/topten/internal/middleware"
	"github.com/mmynk/topten/internal/storage"
)

// RouterConfig holds what NewRouter needs besides the service.
type RouterConfig struct {
	CORSOrigins []string

	// Registry receives RPC metrics and is served on /metrics.
	Registry *prometheus.Registry

	// Health is pinged by /healthz when it implements storage.Pinger.
	Health storage.KV
}

// NewRouter mounts the ListService, /healthz and /metrics on a chi router.
func NewRouter(svc ListServiceHandler, cfg RouterConfig) http.Handler {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(cfg.Registry)

	path, handler := NewListServiceHandler(svc, connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		metrics.Interceptor(),
		middleware.CredentialsInterceptor(),
	))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms", "Authorization", auth.UserTokenHeader},
		ExposedHeaders:   []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", healthHandler(cfg.Health))
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	r.Handle(path+"*", handler)

	return r
}

func healthHandler(kv storage.KV) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK

		if pinger, ok := kv.(storage.Pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				status, code = "unavailable", http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}
