package handlers

import (
	"net/http"

	"portfolio/internal/api/dto/common"
	"portfolio/internal/logging"
	"portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// NotFound answers every unmatched route
func NotFound(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Debug("404 - Route not found: %s %s", c.Request.Method, c.Request.URL.Path)
		utils.HandleStatus(c, http.StatusNotFound, common.StatusNotFound)
	}
}
