package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anandhu362/Url-shorten-website/internal/config"
	"github.com/Anandhu362/Url-shorten-website/internal/geo"
	"github.com/Anandhu362/Url-shorten-website/internal/handler"
	"github.com/Anandhu362/Url-shorten-website/internal/logger"
	"github.com/Anandhu362/Url-shorten-website/internal/middleware"
	"github.com/Anandhu362/Url-shorten-website/internal/repository/postgres"
	"github.com/Anandhu362/Url-shorten-website/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Initialize(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	log := logger.Get()
	log.Info("Starting URL shortener service",
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
		"log_level", cfg.Log.Level,
	)

	dbPool, err := setupDatabase(cfg)
	if err != nil {
		log.Error("Failed to setup database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	urlRepo := postgres.NewURLRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)
	geoClient := geo.NewClient(cfg.Geo.APIURL, cfg.Geo.Timeout)

	shortenerService := service.NewShortenerService(urlRepo, analyticsRepo, geoClient, cfg.Server.BaseURL)

	shortenerHandler := handler.NewShortenerHandler(shortenerService)
	analyticsHandler := handler.NewAnalyticsHandler(shortenerService)
	healthHandler := handler.NewHealthHandler(dbPool)

	router := setupRouter(cfg, shortenerHandler, analyticsHandler, healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	gracefulShutdown(srv, cfg.Server.ShutdownTimeout, dbPool, log)
}

func setupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	return pgxpool.NewWithConfig(context.Background(), poolConfig)
}

func setupRouter(
	cfg *config.Config,
	shortenerHandler *handler.ShortenerHandler,
	analyticsHandler *handler.AnalyticsHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)

	api := router.Group("/api/urls")
	{
		api.GET("", shortenerHandler.ListURLs)
		api.POST("/shorten", shortenerHandler.ShortenURL)
		api.POST("/check", shortenerHandler.CheckURL)
		api.GET("/check-short/:shortId", shortenerHandler.CheckShortID)
		api.GET("/analytics/:shortId", analyticsHandler.GetAnalytics)
	}

	router.GET("/:shortId", shortenerHandler.Redirect)

	return router
}

func gracefulShutdown(srv *http.Server, timeout time.Duration, dbPool *pgxpool.Pool, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	dbPool.Close()
	log.Info("Database connection closed")

	log.Info("Graceful shutdown completed")
}
