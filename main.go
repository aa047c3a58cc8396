package main

import (
	"net/http"
	"os"

	"petcare-api/config"
	"petcare-api/handlers"
	"petcare-api/middleware"
	"petcare-api/models"
	"petcare-api/repositories"
	"petcare-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	moderationRepo := repositories.NewModerationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo, tagRepo, moderationRepo, cfg.Moderation, logger.With().Str("component", "questions").Logger())
	tagService := services.NewTagService(tagRepo)
	duplicateService := services.NewDuplicateService(questionRepo, moderationRepo, cfg.Moderation, logger.With().Str("component", "duplicates").Logger())
	moderationService := services.NewModerationService(questionRepo, moderationRepo, cfg.Moderation, logger.With().Str("component", "moderation").Logger())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	tagHandler := handlers.NewTagHandler(tagService)
	duplicateHandler := handlers.NewDuplicateHandler(duplicateService)
	moderationHandler := handlers.NewModerationHandler(moderationService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Questions
			questions := protected.Group("/questions")
			{
				questions.POST("", questionHandler.CreateQuestion)
				questions.GET("", questionHandler.GetQuestions)
				questions.GET("/:id", questionHandler.GetQuestion)
				questions.DELETE("/:id", questionHandler.DeleteQuestion)
				questions.POST("/quality-preview", questionHandler.QualityPreview)
			}

			// Duplicate detection
			protected.POST("/duplicate-check", duplicateHandler.CheckDuplicates)
			protected.PUT("/duplicate-mark",
				middleware.RequireRole(models.RoleModerator, models.RoleAdmin, models.RoleVetPartner),
				duplicateHandler.MarkDuplicate)

			// Moderation
			moderation := protected.Group("/moderation")
			moderation.Use(middleware.RequireRole(models.RoleModerator, models.RoleAdmin, models.RoleVetPartner))
			{
				moderation.POST("/analyze", moderationHandler.Analyze)
				moderation.POST("/auto-process", moderationHandler.AutoProcess)
				moderation.GET("/queue", moderationHandler.GetQueue)
				moderation.PUT("/queue/:id/review", moderationHandler.ReviewQueueEntry)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
			}
		}

		// Public question routes (active only)
		public := v1.Group("/public")
		{
			public.GET("/questions", questionHandler.GetPublicQuestions)
			public.GET("/questions/:id", questionHandler.GetPublicQuestion)
		}
	}

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}
}
