package router

import (
	"log"

	"pulsefeed/internal/handlers"
	"pulsefeed/internal/middleware"
	"pulsefeed/internal/models"
	"pulsefeed/internal/repositories"
	"pulsefeed/pkg/config"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User profile routes configured.")

	log.Println("All routes configured.")
}
