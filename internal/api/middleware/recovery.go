package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"portfolio/internal/api/constants"
	"portfolio/internal/api/dto/common"
	"portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a 500 JSON response. The panic value is
// only sent to the caller when exposeDetails is set.
func Recovery(logger *logging.Logger, exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("%v", recovered)
			}

			logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.ClientIP(),
				c.GetString(constants.ContextKeyRequestID),
				err,
				debug.Stack(),
			)

			var exposed error
			if exposeDetails {
				exposed = err
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				common.NewErrorResponse(http.StatusInternalServerError, common.StatusInternalError, exposed))
		}()

		c.Next()
	}
}
