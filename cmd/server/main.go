package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"carelink/internal/eligibility/cache"
	eligibilityhandler "carelink/internal/eligibility/handler"
	eligibilitymetrics "carelink/internal/eligibility/metrics"
	"carelink/internal/eligibility/provider"
	"carelink/internal/eligibility/service"
	"carelink/internal/eligibility/store"
	httpapi "carelink/internal/http"
	"carelink/internal/jwttoken"
	"carelink/internal/platform/config"
	"carelink/internal/platform/httpserver"
	"carelink/internal/platform/logger"
	"carelink/internal/platform/middleware"
	"carelink/internal/platform/postgres"
	platformredis "carelink/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Cache is optional infrastructure: a failed connection degrades to
	// always-miss behavior instead of blocking startup.
	var resultCache cache.ResultCache
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, eligibility cache disabled", "error", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		resultCache = cache.NewRedis(redisClient.Client)
	}

	checkStore := store.NewPostgres(db)
	verifier := provider.New(cfg.Eligibility)

	svcOpts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(eligibilitymetrics.New()),
	}
	if resultCache != nil {
		svcOpts = append(svcOpts, service.WithCache(resultCache, cfg.Eligibility.CacheTTL))
	}
	eligibilitySvc, err := service.New(checkStore, verifier, svcOpts...)
	if err != nil {
		log.Error("failed to build eligibility service", "error", err)
		os.Exit(1)
	}

	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, "carelink", "carelink-api")

	router := httpapi.NewRouter(httpapi.Deps{
		Eligibility: eligibilityhandler.New(eligibilitySvc, log),
		Auth:        jwtValidator{service: jwtService},
		DB:          db,
		Redis:       redisClient,
		Logger:      log,
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting carelink server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// jwtValidator adapts the token service to the auth middleware contract.
type jwtValidator struct {
	service *jwttoken.JWTService
}

func (v jwtValidator) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		UserID:         claims.UserID,
		OrganizationID: claims.OrganizationID,
	}, nil
}
