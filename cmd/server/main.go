package main

import (
	"log"
	"net/http"

	_ "forumhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"forumhub/internal/auth"
	"forumhub/internal/cache"
	"forumhub/internal/config"
	"forumhub/internal/db"
	"forumhub/internal/handler"
	"forumhub/internal/model"
	"forumhub/internal/repository"
	"forumhub/internal/router"
	"forumhub/internal/service"
	"forumhub/internal/upload"
)

// @title Community Forum API
// @version 1.0
// @description Forum backend with registration, cookie-based session auth, profile photo uploads, and an admin panel.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	cookies := auth.NewCookieManager(cfg.CookieSecure, auth.ParseSameSite(cfg.CookieSameSite))

	// Upload store; directory creation failure is logged inside and retried
	// on the first accepted upload.
	uploads := upload.NewStore(cfg.UploadDir, cfg.MaxUploadBytes)
	_ = uploads.EnsureDir()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	adminService := service.NewAdminService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, uploads, cookies)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(e, cfg, cacheClient, authHandler, adminHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
