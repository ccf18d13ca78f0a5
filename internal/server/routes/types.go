package routes

import (
	"portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

// Middleware contains route-specific middleware
type Middleware struct {
	ContactRateLimit gin.HandlerFunc
}
