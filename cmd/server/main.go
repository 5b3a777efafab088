package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mehedihasansabbir220/task-manager/internal/auth"
	"github.com/mehedihasansabbir220/task-manager/internal/config"
	"github.com/mehedihasansabbir220/task-manager/internal/database"
	"github.com/mehedihasansabbir220/task-manager/internal/handlers"
	"github.com/mehedihasansabbir220/task-manager/internal/middleware"
	"github.com/mehedihasansabbir220/task-manager/internal/repository"
	"github.com/mehedihasansabbir220/task-manager/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The signing key is process-wide and loaded exactly once; refusing to
	// start without it beats issuing tokens signed with an empty key.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	tokens := auth.NewTokenService(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher()
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, hasher, tokens)
	taskService := services.NewTaskService(taskRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokens))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListMyTasks)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
