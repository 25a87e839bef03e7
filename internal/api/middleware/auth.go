package middleware

import (
	"net/http"

	"github.com/Conceptual-Machines/caged-api/internal/config"
	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

// Auth picks the middleware for the configured AUTH_MODE
func Auth(cfg *config.Config) gin.HandlerFunc {
	if cfg.IsGatewayMode() {
		return GatewayAuth()
	}
	return NoAuth()
}

// NoAuth is a pass-through middleware for self-hosted and local use.
// Every request is attributed to the anonymous user.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", anonymousUser)
		c.Next()
	}
}

// GatewayAuth trusts the X-User-ID header set by the fronting gateway, which
// has already validated the caller.
//
// Only use AUTH_MODE=gateway when the API is not reachable except through the gateway.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Missing X-User-ID header from gateway",
			})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		if email := c.GetHeader("X-User-Email"); email != "" {
			c.Set("user_email", email)
		}
		if apiKeyID := c.GetHeader("X-API-Key-ID"); apiKeyID != "" {
			c.Set("api_key_id", apiKeyID)
		}

		c.Next()
	}
}

// UserID returns the caller set by NoAuth or GatewayAuth
func UserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok
}
