// Package api provides the HTTP API for the oxygen calculator service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/vayura/oxygen-calculator/internal/api/handler"
	"github.com/vayura/oxygen-calculator/internal/api/middleware"
	"github.com/vayura/oxygen-calculator/internal/api/response"
	"github.com/vayura/oxygen-calculator/internal/events"
	"github.com/vayura/oxygen-calculator/internal/history"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version        string
	Logger         zerolog.Logger
	ServiceName    string
	Metrics        *middleware.Metrics
	HistoryService *history.Service
	Publisher      events.Publisher

	// AllowedOrigins lists CORS origins permitted to call the API
	// (the platform web frontend).
	AllowedOrigins []string

	// StoreReady reports history store health for readiness checks;
	// nil means no store is configured.
	StoreReady func() bool
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = handler.ServiceName
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(cors.Handler(cors.Options{       // Browser access for the web frontend
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.ContentTypeJSON) // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.StoreReady)
	calculateHandler := handler.NewCalculateHandler(cfg.HistoryService, publisher, cfg.Logger)
	historyHandler := handler.NewHistoryHandler(cfg.HistoryService)

	calculateRateLimit := middleware.RateLimitByIP(middleware.CalculateRateLimit) // 60 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// Health endpoints (public, unthrottled for orchestrator probes)
	r.Get("/", opsHandler.HealthCheck)
	r.Get("/health", opsHandler.HealthCheck)
	r.Get("/ready", opsHandler.ReadinessCheck)

	// Calculation endpoint
	r.With(calculateRateLimit).Post("/calculate", calculateHandler.Calculate)

	// Calculation history
	r.With(standardRateLimit).Get("/calculations", historyHandler.ListCalculations)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, r, "no such endpoint")
	})

	return r
}
