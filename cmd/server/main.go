package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "bucky/docs" // swagger docs
	"bucky/internal/auth"
	"bucky/internal/config"
	"bucky/internal/db"
	"bucky/internal/handler"
	"bucky/internal/repository"
	"bucky/internal/router"
	"bucky/internal/service"
)

// @title Bucky API
// @version 1.0
// @description Bucket-list REST API with basic and token authentication.
// @BasePath /api/v1.0
// @schemes http
// @securityDefinitions.basic BasicAuth
// @description Username/password pair, or an auth token in the username slot with an empty password.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Debug = !cfg.IsProduction()

	// The testing profile rebuilds the schema from scratch on boot.
	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.IsTesting())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	bucketListRepo := repository.NewBucketListRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.SecretKey, time.Duration(cfg.TokenTTLSeconds)*time.Second)
	authGuard := auth.Middleware(userRepo, tokenService)

	// Initialize services
	userService := service.NewUserService(userRepo)
	bucketListService := service.NewBucketListService(bucketListRepo, cfg.BucketsPerPage)
	taskService := service.NewTaskService(bucketListRepo, taskRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, tokenService)
	bucketListHandler := handler.NewBucketListHandler(bucketListService, cfg.BucketsPerPage)
	taskHandler := handler.NewTaskHandler(taskService)

	// Register routes
	router.Register(e, authGuard, authHandler, bucketListHandler, taskHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
