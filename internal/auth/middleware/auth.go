package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thequickanswers/subsite-backend/internal/auth"
)

// AdminVerifier re-checks that the admin named in a token still exists
// with the claimed role. Tokens outlive account deletion, so role gates
// cannot trust claims alone.
type AdminVerifier interface {
	ExistsWithRole(ctx context.Context, id uuid.UUID, role string) (bool, error)
}

// RequireUser validates the bearer token and stores the identity on the context.
func RequireUser(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := verify(c, tm)
		if !ok {
			return
		}

		auth.SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAdmin admits tokens whose admin account still exists with the claimed role.
func RequireAdmin(tm *auth.TokenManager, admins AdminVerifier) gin.HandlerFunc {
	return requireRole(tm, admins, "")
}

// RequireSuperAdmin admits only accounts that currently hold the super_admin role.
func RequireSuperAdmin(tm *auth.TokenManager, admins AdminVerifier) gin.HandlerFunc {
	return requireRole(tm, admins, "super_admin")
}

func requireRole(tm *auth.TokenManager, admins AdminVerifier, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := verify(c, tm)
		if !ok {
			return
		}

		checkRole := role
		if checkRole == "" {
			checkRole = identity.Role
		}

		exists, err := admins.ExistsWithRole(c.Request.Context(), identity.ID, checkRole)
		if err != nil || !exists {
			msg := "Access denied. Admin privileges required."
			if role == "super_admin" {
				msg = "Access denied. Super admin privileges required."
			}
			c.JSON(http.StatusForbidden, gin.H{"message": msg, "error": true})
			c.Abort()
			return
		}

		auth.SetIdentity(c, identity)
		c.Next()
	}
}

func verify(c *gin.Context, tm *auth.TokenManager) (*auth.Identity, bool) {
	token := extractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided.", "error": true})
		c.Abort()
		return nil, false
	}

	identity, err := tm.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token", "error": true})
		c.Abort()
		return nil, false
	}

	return identity, true
}

// extractToken pulls the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
