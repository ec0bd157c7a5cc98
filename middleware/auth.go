package middleware

import (
	"net/http"
	"strings"

	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// RequireAuth validates the bearer token and stores its claims on the
// context. No server-side session state; the token carries everything.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the authenticated caller's claims, or nil.
func CurrentClaims(c *gin.Context) *services.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*services.Claims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUserID returns the caller's user id, 0 when unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	if claims := CurrentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// CurrentRole returns the caller's role, empty when unauthenticated.
func CurrentRole(c *gin.Context) models.UserRole {
	if claims := CurrentClaims(c); claims != nil {
		return claims.Role
	}
	return ""
}
