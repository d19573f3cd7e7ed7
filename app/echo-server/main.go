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

	"sparetime/app/echo-server/router"
	"sparetime/business/queue"
	"sparetime/business/recommender"
	userService "sparetime/business/user"
	"sparetime/internal/middleware"
	"sparetime/internal/repository/embedding"
	psqlRepo "sparetime/internal/repository/postgres"
	redisRepo "sparetime/internal/repository/redis"
	"sparetime/internal/rest"
	"sparetime/pkg/config"
	"sparetime/pkg/database"
	redisdb "sparetime/pkg/database/redis"
	"sparetime/pkg/logger"
	"sparetime/pkg/metrics"
	"sparetime/pkg/utils"

	"github.com/go-playground/validator/v10"
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
	logger.Info("Starting SpareTime API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		_ = redisdb.CloseRedisClient(redisClient)
	}()

	// Embedding inference service
	embedder := embedding.NewEmbeddingRepository(embedding.EmbeddingConfig{
		BaseURL:           cfg.Embedding.BaseURL,
		BasicAuthUsername: cfg.Embedding.BasicAuthUsername,
		BasicAuthPassword: cfg.Embedding.BasicAuthPassword,
	})

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	profileRepo := psqlRepo.NewProfileRepository(db)
	videoRepo := psqlRepo.NewVideoRepository(db)
	ratingRepo := psqlRepo.NewRatingRepository(db)
	queueRepo := psqlRepo.NewQueueRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	usrService := userService.NewUserService(userRepo, profileRepo, sessionRepo, validate)
	recoService := recommender.NewRecommenderService(
		videoRepo, profileRepo, userRepo, ratingRepo, embedder, recommender.DefaultConfig(),
	)
	queueService := queue.NewQueueService(queueRepo, videoRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	recoHandler := rest.NewRecommendationHandler(recoService)
	queueHandler := rest.NewQueueHandler(queueService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware backed by the redis session store
	authRequired := middleware.AuthMiddlewareWithRedis(usrService)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupRecommendationRoutes(api, recoHandler, authRequired)
	router.SetupQueueRoutes(api, queueHandler, authRequired)

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

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
