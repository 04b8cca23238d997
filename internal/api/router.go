package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/spendy/ledger/internal/api/handler"
	"github.com/spendy/ledger/internal/api/metrics"
	"github.com/spendy/ledger/internal/api/middleware"
	"github.com/spendy/ledger/internal/core/ports"
	"github.com/spendy/ledger/internal/infrastructure/http/handlers"
)

// Dependencies groups everything the router needs.
type Dependencies struct {
	Sessions   ports.SessionService
	Ledger     ports.LedgerService
	Categories ports.CategoryRegistry
	Store      ports.Pinger
	Backend    string
	JWTSecret  string
	Log        zerolog.Logger

	// AuthRateLimit is requests per second per client on /auth; 0 disables it.
	AuthRateLimit float64
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(requestLogger(deps.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	txHandler := handler.NewTransactionHandler(deps.Ledger)
	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	summaryHandler := handler.NewSummaryHandler(deps.Ledger)
	authMiddleware := middleware.Auth(deps.JWTSecret, deps.Sessions)

	// --- Auth routes ---
	authGroup := e.Group("/auth")
	if deps.AuthRateLimit > 0 {
		authGroup.Use(echomiddleware.RateLimiter(
			echomiddleware.NewRateLimiterMemoryStore(rate.Limit(deps.AuthRateLimit)),
		))
	}
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/session", authHandler.Session)

	// --- Ledger routes (session required) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/transactions", txHandler.List)
	v1.POST("/transactions", txHandler.Record)
	v1.DELETE("/transactions", txHandler.Clear)
	v1.DELETE("/transactions/:id", txHandler.Delete)

	v1.GET("/categories", categoryHandler.List)
	v1.POST("/categories", categoryHandler.Create)

	v1.GET("/summary/overview", summaryHandler.Overview)
	v1.GET("/summary/categories", summaryHandler.Categories)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps.Backend, deps.Store)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// requestLogger logs one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
