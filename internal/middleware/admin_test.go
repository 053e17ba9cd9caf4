package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/example/portfolio-api/internal/auth"
	"github.com/example/portfolio-api/internal/models"
)

type staticResolver struct {
	roles map[string]models.Role
	err   error
}

func (r *staticResolver) Resolve(ctx context.Context, uid string) (models.Role, error) {
	if r.err != nil {
		return models.RoleUser, r.err
	}
	if role, ok := r.roles[uid]; ok {
		return role, nil
	}
	return models.RoleUser, nil
}

func (r *staticResolver) Invalidate(uid string) {}

// newGuardedRouter wires the guard behind a stub that injects the verified
// identity the way Auth would.
func newGuardedRouter(roles auth.RoleResolver, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	inject := func(c *gin.Context) {
		if uid != "" {
			c.Set(ContextUserID, uid)
			c.Set(ContextUserEmail, uid+"@example.com")
		}
		c.Next()
	}
	admin := router.Group("/admin", inject, AdminGuard(roles))
	admin.GET("/messages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminGuardAllowsAdmin(t *testing.T) {
	router := newGuardedRouter(&staticResolver{roles: map[string]models.Role{"u1": models.RoleAdmin}}, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuardRejectsAnonymous(t *testing.T) {
	router := newGuardedRouter(&staticResolver{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), auth.LoginRoute)
}

func TestAdminGuardRejectsNonAdmin(t *testing.T) {
	router := newGuardedRouter(&staticResolver{roles: map[string]models.Role{"u2": models.RoleUser}}, "u2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), auth.LoginRoute)
}

func TestAdminGuardResolverFailure(t *testing.T) {
	router := newGuardedRouter(&staticResolver{err: errors.New("store down")}, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
