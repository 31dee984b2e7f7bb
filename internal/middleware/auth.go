package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mirado/doctors-portal-api/internal/utils"
)

// EmailKey is where the verified token email lands in the gin context.
const EmailKey = "email"

// AuthMiddleware guards a route with bearer-token verification. A missing
// header is 401; a present but unverifiable token is 403. The token is the
// second whitespace-separated field of the Authorization header.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}
