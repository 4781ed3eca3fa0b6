package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityRouter() *gin.Engine {
	r := gin.New()
	r.GET("/whoami", identity(), func(c *gin.Context) {
		id := callerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "role": id.Role})
	})
	r.GET("/admin", identity(), requireRole(RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestIdentity_AcceptsKnownRoles(t *testing.T) {
	r := identityRouter()
	for _, role := range []string{RoleBuyer, RoleSupplier, RoleAdmin} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Wex-User-Id", "u-1")
		req.Header.Set("X-Wex-User-Role", role)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
		assert.Contains(t, w.Body.String(), role)
	}
}

func TestIdentity_RejectsMissingOrUnknownRole(t *testing.T) {
	r := identityRouter()
	for _, role := range []string{"", "root", "Buyer"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if role != "" {
			req.Header.Set("X-Wex-User-Role", role)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "role %q", role)
	}
}

func TestRequireRole(t *testing.T) {
	r := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Wex-User-Role", RoleAdmin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Wex-User-Role", RoleBuyer)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestIdentityActor(t *testing.T) {
	assert.Equal(t, engagementevent.ActorRoleBuyer, Identity{Role: RoleBuyer}.Actor())
	assert.Equal(t, engagementevent.ActorRoleSupplier, Identity{Role: RoleSupplier}.Actor())
	assert.Equal(t, engagementevent.ActorRoleAdmin, Identity{Role: RoleAdmin}.Actor())
}
