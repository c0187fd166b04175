package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tassuhoiva/booking-api/pkg/auth"
)

// AdminAuth guards the booking-management routes. It accepts the bearer
// token issued by the admin login endpoint; there is no user system behind
// it, just the one shared gate.
type AdminAuth struct {
	tokens *auth.TokenService
}

func NewAdminAuth(tokens *auth.TokenService) *AdminAuth {
	return &AdminAuth{tokens: tokens}
}

func (a *AdminAuth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "missing bearer token",
			})
			return
		}

		if err := a.tokens.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "invalid or expired token",
			})
			return
		}

		c.Next()
	}
}
