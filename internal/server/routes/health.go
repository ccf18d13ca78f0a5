package routes

import (
	"portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures the health probe and build info endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler) {
	router.GET("/", health.Check)
	router.HEAD("/", health.Check)
	router.GET("/version", health.Version)
	router.HEAD("/version", health.Version)
}
