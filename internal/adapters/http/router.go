package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

// msgRouteNotFound is returned for any request that matches no route.
const msgRouteNotFound = "Not Found"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// BasePath prefixes the quote routes. Empty mounts them at the root.
	BasePath string

	// Timeout is the per-request deadline for API routes. Zero disables it.
	Timeout time.Duration

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the quote routes.
	QuoteHandler *handlers.QuoteHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Request ID - generate/extract request ID
//  2. Correlation ID - handle distributed tracing correlation
//  3. OpenTelemetry - tracing, then metrics and the X-Trace-ID header
//  4. Logging - request-scoped logger and request lines (skips health endpoints)
//  5. ErrorResponder - renders the error recorded by anything below it
//  6. Recovery - turns a panic into a recorded error
//  7. Timeout - request deadline (API group only)
//
// Route groups:
//   - /-/ (internal): Health endpoints, no timeout
//   - {base path}: quote routes
//
// Unmatched requests are forwarded to the ErrorResponder as not found.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
		middleware.ErrorResponder(),
		middleware.Recovery(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group(cfg.BasePath)
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	// NoRoute handlers run after the global middleware.
	engine.NoRoute(handlers.Handle(notFound))
}

// notFound reports the unmatched path as a not-found fault.
func notFound(c *gin.Context) error {
	return dto.WithMessage(domain.NewNotFoundError("route", c.Request.URL.Path), msgRouteNotFound)
}

// NewDefaultRouterConfig creates a RouterConfig from the server settings.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	serverCfg *config.ServerConfig,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		BasePath:      serverCfg.BasePath,
		Timeout:       serverCfg.RequestTimeout,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
	}
}
