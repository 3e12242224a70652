package middleware

import (
	"net/http"
	"strings"

	"facultyreview/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AdminAuth is a Gin middleware guarding the moderation routes. It checks
// for a valid admin JWT in the Authorization header.
func AdminAuth(adminService service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token (role check included)
		claims, err := adminService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("role", "admin")

		c.Next()
	}
}
