package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/portfolio-api/internal/auth"
)

// AdminGuard creates a Gin middleware that gates admin routes. It builds the
// session state for the request, runs the guard decision table over it, and
// maps redirect decisions onto JSON responses with a redirect hint for the
// client-side router.
func AdminGuard(roles auth.RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := auth.State{Phase: auth.PhaseUnauthenticated}

		if uid, ok := c.Get(ContextUserID); ok {
			role, err := roles.Resolve(c.Request.Context(), uid.(string))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve role"})
				return
			}
			email, _ := c.Get(ContextUserEmail)
			emailStr, _ := email.(string)
			state = auth.State{
				Phase:    auth.PhaseAuthenticated,
				Identity: &auth.Identity{UID: uid.(string), Email: emailStr},
				Role:     role,
			}
		}

		switch auth.Decide(state, c.Request.URL.Path) {
		case auth.Render, auth.RenderLogin:
			c.Next()
		case auth.RedirectToAdminHome:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"redirect": auth.AdminHomeRoute})
		default:
			status := http.StatusForbidden
			if state.Phase != auth.PhaseAuthenticated {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":    "admin access required",
				"redirect": auth.LoginRoute,
			})
		}
	}
}
