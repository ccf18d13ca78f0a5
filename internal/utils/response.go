package utils

import (
	"net/http"

	"portfolio/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a 200 response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleStatus sends a code/status envelope without error details
func HandleStatus(c *gin.Context, code int, status string) {
	c.JSON(code, common.NewStatusResponse(code, status))
}

// AbortWithStatus sends a code/status envelope and stops the handler chain
func AbortWithStatus(c *gin.Context, code int, status string) {
	c.AbortWithStatusJSON(code, common.NewStatusResponse(code, status))
}
