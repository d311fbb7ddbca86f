package middleware

import (
	"net/http"
	"strings"

	"inkwell/pkg/jwt"
	"inkwell/pkg/response"
	"inkwell/pkg/session"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and checks that its session
// is still live (logout/refresh revoke the jti). On success the user id,
// role and jti are stored on the context.
func AuthMiddleware(jwtService *jwt.Service, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		live, err := sessions.Exists(c.Request.Context(), claims.ID)
		if err != nil || !live {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Set("token_jti", claims.ID)
		c.Next()
	}
}

// RequireAdmin rejects authenticated users whose role is not admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != "admin" {
			response.Error(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
