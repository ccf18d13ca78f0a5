package routes

import (
	"portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures the public contact form endpoint
func SetupContactRoutes(router *gin.Engine, contact *handlers.ContactHandler, m *Middleware) {
	chain := []gin.HandlerFunc{}
	if m != nil && m.ContactRateLimit != nil {
		chain = append(chain, m.ContactRateLimit)
	}
	chain = append(chain, contact.Submit)

	router.POST("/contact", chain...)
}
