package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/shared/server/respond"
	"cvos-backend/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 internal_error envelope. The
// request id is echoed in details so a user report can be matched to the log.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			reqID := RequestIDFromContext(c)
			telemetry.Error("http.panic", map[string]any{
				"request_id": reqID,
				"client_key": ClientKeyFromContext(c),
				"route":      c.FullPath(),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"panic":      fmt.Sprint(rec),
				"stack":      string(debug.Stack()),
			})
			if c.Writer.Written() {
				// Part of a PDF or JSON body already went out; a second envelope would corrupt it.
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", gin.H{
				"requestId": reqID,
			})
			c.Abort()
		}()
		c.Next()
	}
}
