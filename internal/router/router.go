package router

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/volunize-hub/backend/internal/handlers"
	"github.com/volunize-hub/backend/internal/middleware"
	"github.com/volunize-hub/backend/internal/repositories"
	"github.com/volunize-hub/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware. CORS must allow
// credentials because the session token travels in a cookie.
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	db := mgClient.Database(cfg.DatabaseName)

	// --- Initialize Repositories ---
	postRepo := repositories.NewMongoPostRepository(db)
	requestRepo := repositories.NewMongoRequestRepository(db)

	// One request per volunteer per post is enforced by the store.
	if err := requestRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create request indexes: %v", err)
	}
	log.Println("MongoDB indexes ensured.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "hello world"})
	})

	// --- Unprotected routes ---
	authHandler := handlers.NewAuthHandler(firebaseAuthClient, cfg.JWTSecret, cfg.IsProduction())
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	postHandler := handlers.NewPostHandler(postRepo)
	postHandler.RegisterPublicRoutes(e)
	log.Println("Public post routes configured.")

	// --- Protected routes (cookie JWT + email query check) ---
	api := e.Group("")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(middleware.RequireQueryEmail())
	log.Println("JWT authentication middleware applied to protected routes.")

	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	requestHandler := handlers.NewRequestHandler(requestRepo, postRepo)
	requestHandler.RegisterRequestRoutes(api)
	log.Println("Request routes configured.")

	log.Println("All routes configured.")
}
