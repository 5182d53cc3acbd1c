package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop-service/pkg/token"
)

// identityKey is the gin context key the auth guard stores the decoded
// claims under.
const identityKey = "identity"

// RequireAuth guards mutating routes. It rejects requests without a
// valid bearer token before any handler runs, and attaches the decoded
// identity to the context on success.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity returns the claims attached by RequireAuth, or nil on an
// unguarded route.
func Identity(c *gin.Context) *token.Claims {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}
