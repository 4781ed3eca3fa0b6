package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

// Roles accepted from the auth proxy.
const (
	RoleBuyer    = "buyer"
	RoleSupplier = "supplier"
	RoleAdmin    = "admin"
)

const identityKey = "wex.identity"

// Identity is the caller extracted from proxy headers. The auth proxy in
// front of the API owns authentication; these headers are trusted.
type Identity struct {
	UserID string
	Role   string
}

// Actor maps the HTTP role onto the state machine's actor role.
func (i Identity) Actor() engagementevent.ActorRole {
	switch i.Role {
	case RoleSupplier:
		return engagementevent.ActorRoleSupplier
	case RoleAdmin:
		return engagementevent.ActorRoleAdmin
	default:
		return engagementevent.ActorRoleBuyer
	}
}

// identity extracts the caller from X-Wex-User-Id / X-Wex-User-Role and
// rejects requests with no or unknown role.
func identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := Identity{
			UserID: c.GetHeader("X-Wex-User-Id"),
			Role:   c.GetHeader("X-Wex-User-Role"),
		}
		switch id.Role {
		case RoleBuyer, RoleSupplier, RoleAdmin:
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "missing or unknown role", "code": "unauthenticated"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// requireRole gates a route group to one role.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerIdentity(c).Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "forbidden", "code": "forbidden"})
			return
		}
		c.Next()
	}
}

// callerIdentity reads the identity set by the middleware.
func callerIdentity(c *gin.Context) Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}
	}
	return v.(Identity)
}
