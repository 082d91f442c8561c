package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"resume_analyzer/internal/api"
)

// Recovery converts a panic into a 500 response. API routes get the generic
// JSON error body; other routes get a plain status.
func Recovery(apiPrefix string, body api.ErrorResponse) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"request_id", RequestIDFromContext(c),
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				if strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
					c.AbortWithStatusJSON(http.StatusInternalServerError, body)
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
