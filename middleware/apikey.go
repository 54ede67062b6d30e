package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-KEY"

// ValidateAPIKey guards staff-only storefront endpoints. An empty key leaves
// them open.
func ValidateAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
