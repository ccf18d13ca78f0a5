package middleware

import (
	"net/http"
	"strings"

	"portfolio/internal/api/constants"
	"portfolio/internal/api/dto/common"
	"portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

const localhostOriginPrefix = "http://localhost:"

// CORS allows requests without an Origin header, from http://localhost on
// any port, and from the configured origins ("*" allows everything).
// Anything else is rejected with 403.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	originAllowed := func(origin string) bool {
		if allowAll || strings.HasPrefix(origin, localhostOriginPrefix) {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get(constants.HeaderOrigin)

		// Non-browser clients such as curl send no Origin
		if origin == "" {
			c.Next()
			return
		}

		if !originAllowed(origin) {
			utils.AbortWithStatus(c, http.StatusForbidden, common.StatusCORSDenied)
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Add("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
