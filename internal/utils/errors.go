package utils

import (
	"portfolio/internal/api/dto/common"
	"portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs err and sends it to the caller in the "error" field.
// Use it for failures the caller is entitled to see, such as relay errors.
func HandleAPIError(c *gin.Context, logger *logging.Logger, err error, code int, status string) {
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		code,
		status,
		err,
	)

	c.JSON(code, common.NewErrorResponse(code, status, err))
}
