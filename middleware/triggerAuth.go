package middleware

import (
	"net/http"
	"strings"

	"mindwell/utils"

	"github.com/gin-gonic/gin"
)

const triggerScope = "trigger"

// TriggerAuthMiddleware guards the regeneration endpoints. Callers (the job
// scheduler or an operator) must present a signed token carrying the trigger
// scope; regeneration is idempotent but not free, so it is not left open.
func TriggerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, scope, err := utils.TokenClaims(tokenString)
		if err != nil || scope != triggerScope {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized trigger access"})
			return
		}

		c.Set("triggerSubject", subject)
		c.Next()
	}
}
