package server

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ayodejiAA/trivia/internal/config"
	"github.com/ayodejiAA/trivia/pkg/http/body"
	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// RouteRegistrar mounts a group of API routes.
type RouteRegistrar interface {
	Register(mux *http.ServeMux)
}

// NewHTTPServer wires health, metrics and the API routes behind the shared middleware.
// redis may be nil when the category cache is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redis *redis.Client, routes ...RouteRegistrar) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pingDependencies(ctx, pool, redis); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusServiceUnavailable, "dependencies unavailable")
			return
		}
		body.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "ready"})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	for _, route := range routes {
		route.Register(mux)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})

	handler := Chain(mux,
		RequestLogger(logger),
		Metrics,
		Recover,
		CORS(cfg.CORS),
	)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redis *redis.Client) error {
	if pool != nil {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
	}
	if redis != nil {
		if err := redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
