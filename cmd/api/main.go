package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sp3fck/hamgallery-backend/internal/config"
	"github.com/sp3fck/hamgallery-backend/internal/handler"
	"github.com/sp3fck/hamgallery-backend/internal/middleware"
	"github.com/sp3fck/hamgallery-backend/internal/repository"
	"github.com/sp3fck/hamgallery-backend/internal/service"
	"github.com/sp3fck/hamgallery-backend/internal/validation"
	"github.com/sp3fck/hamgallery-backend/pkg/database"
	"github.com/sp3fck/hamgallery-backend/pkg/email"
	jwtPkg "github.com/sp3fck/hamgallery-backend/pkg/jwt"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.UsingDevSecret {
		zapLogger.Warn("JWT_SECRET is not set, using the development fallback secret. Do NOT run production like this.")
	}

	db, err := database.New(cfg.DatabaseURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db, zapLogger)
	photoRepo := repository.NewPhotoRepository(db, zapLogger)
	iframeRepo := repository.NewIframeRepository(db, zapLogger)

	// Credential layer
	tokens := jwtPkg.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)

	// Email service
	var emailService *email.EmailService
	if cfg.Email.APIKey != "" {
		emailService = email.NewEmailService(cfg.Email, zapLogger)
	} else {
		zapLogger.Warn("RESEND_API_KEY is not set, verification emails are disabled")
	}

	// Services
	authService := service.NewAuthService(userRepo, emailService, tokens, cfg.JWTSecret)
	photoService := service.NewPhotoService(photoRepo)
	iframeService := service.NewIframeService(iframeRepo, photoRepo)

	// Validator
	validator := validation.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	photoHandler := handler.NewPhotoHandler(photoService, validator)
	iframeHandler := handler.NewIframeHandler(iframeService, validator)
	healthHandler := handler.NewHealthHandler(db)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(logger.New())

	app.Get("/", healthHandler.Info)
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify-email", authHandler.VerifyEmail)

	api.Get("/photos", photoHandler.ListPublic)
	api.Get("/users/:userId/photos", photoHandler.ListUser)
	api.Get("/iframe/viewer", iframeHandler.Viewer)

	// Protected routes
	api.Use(middleware.AuthMiddleware(tokens))
	{
		photos := api.Group("/photos")
		photos.Post("/", photoHandler.Create)
		photos.Get("/mine", photoHandler.ListMine)
		photos.Delete("/:id", photoHandler.Delete)
		photos.Post("/:id/tags", photoHandler.AddTags)
		photos.Delete("/:id/tags/:tag", photoHandler.RemoveTag)

		iframes := api.Group("/iframes")
		iframes.Post("/", iframeHandler.Create)
		iframes.Get("/", iframeHandler.List)
		iframes.Get("/:id", iframeHandler.Get)
	}

	zapLogger.Info("Starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
