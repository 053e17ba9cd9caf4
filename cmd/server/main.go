package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/portfolio-api/internal/api"
	"github.com/example/portfolio-api/internal/auth"
	"github.com/example/portfolio-api/internal/config"
	"github.com/example/portfolio-api/internal/core"
	"github.com/example/portfolio-api/internal/db"
	"github.com/example/portfolio-api/internal/firebase"
	"github.com/example/portfolio-api/internal/middleware"
	"github.com/example/portfolio-api/internal/storage"
)

func main() {
	// Load .env for local development. In production, environment variables
	// are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		gin.SetMode(gin.DebugMode)
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// One client bundle for the whole process, injected everywhere.
	clients, err := firebase.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize Firebase", zap.Error(err))
	}
	defer clients.Close()

	store := storage.NewGCSStore(clients.Bucket, cfg.StorageBucket)

	experienceRepo := db.NewFirestoreExperienceRepository(clients.Firestore)
	projectRepo := db.NewFirestoreProjectRepository(clients.Firestore)
	skillRepo := db.NewFirestoreSkillRepository(clients.Firestore)
	certificationRepo := db.NewFirestoreCertificationRepository(clients.Firestore)
	messageRepo := db.NewFirestoreMessageRepository(clients.Firestore)
	settingsRepo := db.NewFirestoreSettingsRepository(clients.Firestore)
	userRepo := db.NewFirestoreUserRepository(clients.Firestore)

	settingsService := core.NewSettingsService(settingsRepo, store)
	experienceService := core.NewExperienceService(experienceRepo)
	projectService := core.NewProjectService(projectRepo, store)
	skillService := core.NewSkillService(skillRepo)
	certificationService := core.NewCertificationService(certificationRepo)
	messageService := core.NewMessageService(messageRepo)
	seedService := core.NewSeedService(
		cfg.SeedFile,
		settingsService,
		experienceService,
		projectService,
		skillService,
		certificationService,
	)

	roles := auth.NewRoleResolver(userRepo, cfg.RoleCacheTTL)
	authenticator := auth.NewPasswordAuthenticator(cfg.FirebaseWebAPIKey)
	provider := auth.NewProvider(authenticator, roles)
	go provider.Run(ctx)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.ClientURL))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api.RegisterRoutes(router, logger, clients.Auth, provider, roles, api.Services{
		Experiences:    experienceService,
		Projects:       projectService,
		Skills:         skillService,
		Certifications: certificationService,
		Messages:       messageService,
		Settings:       settingsService,
		Seed:           seedService,
	})

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("mode", gin.Mode()))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
