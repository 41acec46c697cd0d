package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/app/echo-server/router"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/catalog"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/profile"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/business/recommender"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/internal/middleware"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/internal/repository/csvstore"
	psqlRepo "github.com/Neha-Agarwal-coder/shopingRecommendation/internal/repository/postgres"
	redisRepo "github.com/Neha-Agarwal-coder/shopingRecommendation/internal/repository/redis"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/internal/rest"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/config"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/database"
	redisDB "github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/database/redis"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/metrics"
	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Shopping Recommendation API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	ctx := context.Background()

	// Load immutable snapshots from CSV
	customerRepo := csvstore.NewCustomerRepository(cfg.Data.CustomerCSVPath)
	productRepo := csvstore.NewProductRepository(cfg.Data.ProductCSVPath)

	profileService, err := profile.NewProfileService(ctx, customerRepo)
	if err != nil {
		logger.Fatal("Failed to load customer profiles", "error", err)
	}

	catalogService, err := catalog.NewCatalogService(ctx, productRepo, cfg.Engine.MaxCatalog)
	if err != nil {
		logger.Fatal("Failed to load product catalog", "error", err)
	}

	// Engine
	recommenderService := recommender.NewService(
		profileService,
		catalogService,
		recommender.PricePolicy(cfg.Engine.PricePolicy),
	)

	// Persistence collaborator (append-only log)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)

	// Optional redis cache; the API degrades to uncached when unavailable
	var cache rest.RecommendationCache
	redisClient, err := redisDB.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, serving without recommendation cache", "error", err)
	} else {
		cache = redisRepo.NewRecommendationCache(
			redisClient,
			time.Duration(cfg.Redis.CacheTTLSec)*time.Second,
		)
		defer func() {
			_ = redisDB.CloseRedisClient(redisClient)
		}()
	}

	// Init handler
	recommendationHandler := rest.NewRecommendationHandler(
		recommenderService,
		recommendationRepo,
		cache,
		catalogService,
		cfg.Engine.DefaultTopN,
	)
	customerHandler := rest.NewCustomerHandler(profileService)
	productHandler := rest.NewProductHandler(catalogService, catalogService)
	adminHandler := rest.NewAdminHandler(catalogService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendationHandler)
	router.SetCustomerRoutes(api, customerHandler)
	router.SetProductRoutes(api, productHandler)
	router.SetAdminRoutes(api, adminHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
