package api

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/auth"
	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/middleware"
)

// Services bundles the content services the API serves.
type Services struct {
	Experiences    *core.ExperienceService
	Projects       *core.ProjectService
	Skills         *core.SkillService
	Certifications *core.CertificationService
	Messages       *core.MessageService
	Settings       *core.SettingsService
	Seed           *core.SeedService
}

// RegisterRoutes wires all /api/v1 routes. Global middleware (logging,
// recovery, CORS) is applied to the engine before this is called.
func RegisterRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	fbAuth *fbauth.Client,
	provider *auth.Provider,
	roles auth.RoleResolver,
	svcs Services,
) {
	experienceHandler := NewExperienceHandler(svcs.Experiences, logger)
	projectHandler := NewProjectHandler(svcs.Projects, logger)
	skillHandler := NewSkillHandler(svcs.Skills, logger)
	certificationHandler := NewCertificationHandler(svcs.Certifications, logger)
	messageHandler := NewMessageHandler(svcs.Messages, logger)
	settingsHandler := NewSettingsHandler(svcs.Settings, logger)
	seedHandler := NewSeedHandler(svcs.Seed, logger)
	authHandler := NewAuthHandler(provider, roles, fbAuth, logger)

	apiV1 := router.Group("/api/v1")

	// Public marketing surface. Every list view fetches the full collection
	// fresh on each call.
	apiV1.GET("/experiences", experienceHandler.List)
	apiV1.GET("/experiences/:id", experienceHandler.Get)
	apiV1.GET("/projects", projectHandler.List)
	apiV1.GET("/projects/featured", projectHandler.ListFeatured)
	apiV1.GET("/projects/:id", projectHandler.Get)
	apiV1.GET("/skills", skillHandler.List)
	apiV1.GET("/skills/:id", skillHandler.Get)
	apiV1.GET("/certifications", certificationHandler.List)
	apiV1.GET("/certifications/:id", certificationHandler.Get)
	apiV1.GET("/settings", settingsHandler.Get)
	apiV1.POST("/contact", messageHandler.Contact)

	// Session endpoints.
	apiV1.POST("/auth/signin", authHandler.SignIn)
	apiV1.POST("/auth/signout", authHandler.SignOut)
	apiV1.GET("/auth/session", authHandler.Session)

	// Admin surface: verified identity plus the admin role.
	admin := apiV1.Group("/admin", middleware.Auth(fbAuth), middleware.AdminGuard(roles))

	admin.POST("/experiences", experienceHandler.Create)
	admin.PUT("/experiences/:id", experienceHandler.Update)
	admin.DELETE("/experiences/:id", experienceHandler.Delete)

	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)
	admin.POST("/projects/:id/image", projectHandler.UploadImage)

	admin.POST("/skills", skillHandler.Create)
	admin.PUT("/skills/:id", skillHandler.Update)
	admin.DELETE("/skills/:id", skillHandler.Delete)

	admin.POST("/certifications", certificationHandler.Create)
	admin.PUT("/certifications/:id", certificationHandler.Update)
	admin.DELETE("/certifications/:id", certificationHandler.Delete)

	admin.GET("/messages", messageHandler.List)
	admin.GET("/messages/:id", messageHandler.Get)
	admin.DELETE("/messages/:id", messageHandler.Delete)

	admin.PUT("/settings", settingsHandler.Update)
	admin.POST("/settings/cv", settingsHandler.UploadCV)

	admin.POST("/seed", seedHandler.Import)
}
