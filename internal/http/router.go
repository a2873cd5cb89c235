// Package httpapi assembles the public HTTP surface. It should delegate to
// domain services without embedding business logic so transport concerns
// remain isolated.
package httpapi

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	eligibilityhandler "carelink/internal/eligibility/handler"
	"carelink/internal/platform/middleware"
	platformredis "carelink/internal/platform/redis"
	"carelink/pkg/platform/httputil"
)

// Deps carries everything the router mounts.
type Deps struct {
	Eligibility *eligibilityhandler.Handler
	Auth        middleware.JWTValidator
	DB          *sql.DB
	Redis       *platformredis.Client
	Logger      *slog.Logger
}

// NewRouter wires all public endpoints. Eligibility routes sit behind bearer
// auth; health and metrics stay open for probes and scrapers.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestMeta)

	r.Get("/healthz", handleHealth(deps))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.Auth, deps.Logger))
		deps.Eligibility.Register(r)
	})

	return r
}

type healthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Cache  string `json:"cache"`
}

// handleHealth reports liveness plus backend reachability. A degraded cache
// does not fail the probe; the service tolerates running without it.
func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		resp := healthResponse{Status: "ok", DB: "ok", Cache: "ok"}
		status := http.StatusOK

		if err := pingDB(ctx, deps.DB); err != nil {
			resp.Status = "unavailable"
			resp.DB = "unreachable"
			status = http.StatusServiceUnavailable
		}
		if deps.Redis == nil {
			resp.Cache = "disabled"
		} else if err := deps.Redis.Health(ctx); err != nil {
			resp.Cache = "unreachable"
		}

		httputil.WriteJSON(w, status, resp)
	}
}

func pingDB(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return sql.ErrConnDone
	}
	return db.PingContext(ctx)
}
