package middleware

import (
	"net/http"
	"strings"

	"airportops/internal/auth"
	"airportops/internal/config"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// RequireAuth validates the bearer token (signature, expiry, issuer,
// audience) and stores the typed claims on the context. Absent, malformed
// and expired tokens all abort with 401; role checks happen later and
// yield 403, so the two outcomes stay distinguishable.
func RequireAuth(cfg config.Authentication) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing or malformed bearer token",
			})
			return
		}

		claims, err := auth.ParseToken(token, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(principalKey, claims)
		c.Next()
	}
}

// Principal returns the claims stored by RequireAuth.
func Principal(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequireRole gates a route group on the role hierarchy. It assumes
// RequireAuth already ran; a missing principal is an authentication
// failure, an insufficient role is a distinct forbidden outcome.
func RequireRole(min auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Principal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "no authenticated principal on context",
			})
			return
		}

		if !claims.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient role for this operation",
			})
			return
		}

		c.Next()
	}
}
