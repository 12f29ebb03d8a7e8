package main

import (
	"log"
	"net/http"

	"garagelink/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"garagelink/internal/auth"
	"garagelink/internal/cache"
	"garagelink/internal/config"
	"garagelink/internal/db"
	"garagelink/internal/handler"
	"garagelink/internal/model"
	"garagelink/internal/repository"
	"garagelink/internal/router"
	"garagelink/internal/service"
)

// @title GarageLink API
// @version 1.0
// @description Vehicle-service marketplace API: customers register vehicles and book services published by mechanics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Service{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	serviceRepo := repository.NewServiceRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	vehicleService := service.NewVehicleService(vehicleRepo)
	catalogService := service.NewCatalogService(serviceRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, vehicleRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		vehicleHandler,
		catalogHandler,
		bookingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
