package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cgrworks/quotation-api/utils"
)

// AuthMiddleware validates the Bearer token and stashes the user identity
// on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID, or "" when unauthenticated.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get("user_id"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserEmail returns the authenticated user's email.
func GetUserEmail(c *gin.Context) string {
	if email, exists := c.Get("user_email"); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}
