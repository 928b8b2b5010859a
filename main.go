package main

import (
	"log"
	"time"

	"wokane-be/internal/cache"
	"wokane-be/internal/config"
	"wokane-be/internal/controllers"
	"wokane-be/internal/database"
	"wokane-be/internal/jwt"
	"wokane-be/internal/metrics"
	"wokane-be/internal/middleware"
	"wokane-be/internal/repository"
	"wokane-be/internal/service"
	"wokane-be/internal/uploads"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize receipt storage
	receiptStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	expenseService := service.NewExpenseService(expenseRepo, receiptStore, cacheClient)

	// Initialize metrics
	collector := metrics.NewCollector()

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(collector.Middleware())
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	controllers.SetupRoutes(router, controllers.RouterConfig{
		Auth:           controllers.NewAuthController(authService),
		Users:          controllers.NewUserController(userService),
		Expenses:       controllers.NewExpenseController(expenseService, receiptStore),
		QRCodes:        controllers.NewQRCodeController(expenseService, cfg.BaseURL),
		JWTService:     jwtService,
		GeneralLimiter: middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		AuthLimiter:    middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst),
	})

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
