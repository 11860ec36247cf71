package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxIdentity = "auth_identity"
)

// SetIdentity stores the verified identity on the Gin context.
// This is set by the auth middlewares.
func SetIdentity(c *gin.Context, id *Identity) {
	c.Set(ctxIdentity, id)
}

// IdentityFrom extracts the verified identity from the Gin context.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}

// UserID returns the authenticated account ID, or uuid.Nil when unauthenticated.
func UserID(c *gin.Context) uuid.UUID {
	id, ok := IdentityFrom(c)
	if !ok {
		return uuid.Nil
	}
	return id.ID
}
