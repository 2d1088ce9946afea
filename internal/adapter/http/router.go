package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Nebur23/bizsense-ai/internal/adapter/http/handler"
	"github.com/Nebur23/bizsense-ai/internal/adapter/http/middleware"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/auth"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler        *handler.AuthHandler
	BusinessHandler    *handler.BusinessHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	CategoryHandler    *handler.CategoryHandler
	ReportHandler      *handler.ReportHandler
	HealthHandler      *handler.HealthHandler

	JWTManager       *auth.JWTManager
	Logger           zerolog.Logger
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Open endpoints
		r.Post("/auth/register", cfg.AuthHandler.Register)
		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
			}

			r.Get("/auth/me", cfg.AuthHandler.Me)
			r.Post("/businesses", cfg.BusinessHandler.Create)
			r.Get("/categories", cfg.CategoryHandler.List)

			// Endpoints requiring a completed onboarding
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireBusiness)

				r.Route("/accounts", func(r chi.Router) {
					r.Post("/", cfg.AccountHandler.Create)
					r.Get("/", cfg.AccountHandler.List)
					r.Put("/{id}/default", cfg.AccountHandler.SetDefault)
					r.Get("/{id}/history", cfg.AccountHandler.History)
				})

				r.Route("/transactions", func(r chi.Router) {
					r.Post("/", cfg.TransactionHandler.Create)
					r.Get("/", cfg.TransactionHandler.List)
					r.Get("/{id}", cfg.TransactionHandler.Get)
				})

				r.Get("/reports/cashflow", cfg.ReportHandler.Cashflow)
			})

			r.Get("/ledger/verify", cfg.ReportHandler.Verify)
		})
	})

	return r
}
