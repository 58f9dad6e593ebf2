package main

import (
	"log"
	"net/http"
	"time"

	"wisekey/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"wisekey/internal/auth"
	"wisekey/internal/cache"
	"wisekey/internal/config"
	"wisekey/internal/db"
	"wisekey/internal/handler"
	"wisekey/internal/model"
	"wisekey/internal/repository"
	"wisekey/internal/router"
	"wisekey/internal/service"
)

// @title WiseKey API
// @version 1.0
// @description Real-estate listing API with JWT authentication and owner-scoped search.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Property{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)

	// Auth core
	jwtService := auth.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenMin)*time.Minute,
		time.Duration(cfg.RefreshTokenDay)*24*time.Hour,
	)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, cacheClient)
	propertyService := service.NewPropertyService(propertyRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler()
	propertyHandler := handler.NewPropertyHandler(propertyService)

	router.Register(e, jwtService, userService, authHandler, userHandler, propertyHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
