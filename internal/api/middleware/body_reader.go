package middleware

import (
	"net/http"

	"portfolio/internal/api/dto/common"
	"portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// LimitRequestBody caps request bodies at maxBytes. Requests announcing a
// larger Content-Length are refused up front; streamed bodies fail on read.
func LimitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.AbortWithStatus(c, http.StatusRequestEntityTooLarge, common.StatusBodyTooLarge)
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
