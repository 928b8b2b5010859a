package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wokane-be/internal/jwt"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthMiddleware returns a Gin middleware that guards protected routes.
// A request without a syntactically valid bearer token whose signature and
// expiration both pass is terminated with a 401 and never reaches resource
// logic. On success the resolved identity is attached to the request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(c)
			return
		}

		claims, err := jwtService.VerifyToken(parts[1])
		if err != nil {
			// Expired vs invalid only matters for the logs
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Printf("auth: rejected expired token from %s", c.ClientIP())
			} else {
				log.Printf("auth: rejected invalid token from %s", c.ClientIP())
			}
			unauthorized(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Authentication required",
	})
	c.Abort()
}
