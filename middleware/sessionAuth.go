package middleware

import (
	"net/http"
	"strings"

	"mindwell/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware resolves the authenticated user from a bearer token
// issued by the platform's identity service and stores the user ID in the
// request context. Full session lifecycle (issuance, revocation) lives with
// that service; this only verifies the signature and expiry.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
