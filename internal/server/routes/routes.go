package routes

import (
	"portfolio/internal/api/handlers"
	"portfolio/internal/api/middleware"
	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all routes and the fallback for unmatched ones
func Setup(router *gin.Engine, h *Handlers, m *Middleware, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)
	SetupContactRoutes(router, h.Contact, m)

	router.NoRoute(handlers.NotFound(logger))
	router.NoMethod(handlers.NotFound(logger))

	logger.Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.Recovery(logger, !cfg.IsProduction()))
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(telemetry.ServiceName))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.LimitRequestBody(cfg.MaxBodyBytes))
}
