package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"cvos-backend/internal/shared/util"
)

const clientKeyKey = "clientKey"

// ClientKey derives an anonymous key for the caller and stores it in context.
// The frontend may send X-Client-Id; otherwise the client IP is used. Nothing is rejected.
// The key namespaces staged uploads and tags log lines; rate limiting does not trust it.
func ClientKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("X-Client-Id"))
		if raw == "" {
			raw = "ip:" + c.ClientIP()
		} else {
			raw = "client:" + raw
		}
		c.Set(clientKeyKey, util.HashUserKey(raw)[:16])
		c.Next()
	}
}

// ClientKeyFromContext returns the key stored by ClientKey, or "" when absent.
func ClientKeyFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(clientKeyKey)
	if key, ok := val.(string); ok {
		return key
	}
	return ""
}
