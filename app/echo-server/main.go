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

	"shopReco/app/echo-server/router"
	"shopReco/business/recommend"
	"shopReco/internal/middleware"
	psqlRepo "shopReco/internal/repository/postgres"
	redisRepo "shopReco/internal/repository/redis"
	"shopReco/internal/rest"
	"shopReco/pkg/config"
	"shopReco/pkg/database"
	redisdb "shopReco/pkg/database/redis"
	"shopReco/pkg/logger"
	"shopReco/pkg/metrics"
	"shopReco/pkg/utils"

	"github.com/google/uuid"
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
	logger.Info("Starting ShopReco", "version", cfg.App.Version)

	metrics.Init()
	utils.InitJWT(cfg.JWT.SecretKey)

	// Load the serving snapshot. Any inconsistency in the artifact is
	// fatal here, never a per-request error.
	artifact, err := recommend.LoadArtifact(cfg.Reco.ArtifactPath)
	if err != nil {
		logger.Fatal("Failed to load recommender artifact", "path", cfg.Reco.ArtifactPath, "error", err)
	}

	engine, err := recommend.NewService(artifact, cfg.Reco.DiversifyWindow)
	if err != nil {
		logger.Fatal("Failed to build recommendation engine", "error", err)
	}
	provider := recommend.NewProvider(engine)

	logger.Info("Recommender artifact loaded", "products", len(artifact.Products), "built_at", artifact.BuiltAt)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Optional page cache
	var pageCache *redisRepo.PageCache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() {
			_ = redisdb.CloseRedisClient(redisClient)
		}()

		pageCache = redisRepo.NewPageCache(redisClient, time.Duration(cfg.Reco.CacheTTLSeconds)*time.Second)
		logger.Info("Recommendation page cache enabled")
	}

	// Init repo
	interactionRepo := psqlRepo.NewInteractionRepository(db)

	// Snapshot reload for the admin endpoint: re-read the artifact,
	// swap the engine pointer, drop stale cached pages.
	reload := func(ctx context.Context) error {
		artifact, err := recommend.LoadArtifact(cfg.Reco.ArtifactPath)
		if err != nil {
			return fmt.Errorf("load artifact: %w", err)
		}
		engine, err := recommend.NewService(artifact, cfg.Reco.DiversifyWindow)
		if err != nil {
			return fmt.Errorf("build engine: %w", err)
		}
		provider.Swap(engine)
		if pageCache != nil {
			if err := pageCache.Flush(ctx); err != nil {
				return fmt.Errorf("flush page cache: %w", err)
			}
		}
		return nil
	}

	// Init handler
	var cache rest.PageCache
	if pageCache != nil {
		cache = pageCache
	}
	recommendHandler := rest.NewRecommendHandler(provider, cache, cfg.Reco.DefaultK, cfg.Reco.DefaultAlpha)
	productHandler := rest.NewProductHandler(provider)
	interactionHandler := rest.NewInteractionHandler(interactionRepo)
	adminHandler := rest.NewAdminHandler(reload)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Ops endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendHandler)
	router.SetupProductRoutes(api, productHandler)
	router.SetupInteractionRoutes(api, interactionHandler)
	router.SetupAdminRoutes(api, adminHandler, middleware.AuthMiddleware(), middleware.AdminOnly())

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
