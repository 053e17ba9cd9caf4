package api

import (
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/auth"
)

// AuthHandler handles sign-in, sign-out and session introspection.
type AuthHandler struct {
	provider *auth.Provider
	roles    auth.RoleResolver
	fbAuth   *fbauth.Client
	logger   *zap.Logger
}

func NewAuthHandler(provider *auth.Provider, roles auth.RoleResolver, fbAuth *fbauth.Client, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, roles: roles, fbAuth: fbAuth, logger: logger}
}

// SignIn handles POST /auth/signin. The role lookup is awaited so the
// response never reports a signed-in session with an unresolved role.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	ident, err := h.provider.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		return
	}

	role, err := h.roles.Resolve(c.Request.Context(), ident.UID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   ident.Token,
		"email":   ident.Email,
		"isAdmin": role.IsAdmin(),
	})
}

// SignOut handles POST /auth/signout.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.provider.SignOut(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Session handles GET /auth/session. The bearer token is optional here: the
// client-side guard needs the unauthenticated answer too.
func (h *AuthHandler) Session(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if header == "" || len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	token, err := h.fbAuth.VerifyIDToken(c.Request.Context(), parts[1])
	if err != nil {
		c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
		return
	}

	role, err := h.roles.Resolve(c.Request.Context(), token.UID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	email, _ := token.Claims["email"].(string)
	c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		Email:         email,
		IsAdmin:       role.IsAdmin(),
	})
}
