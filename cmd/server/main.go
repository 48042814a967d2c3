package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/golden-fur/grooming-records/internal/application"
	"github.com/golden-fur/grooming-records/internal/config"
	"github.com/golden-fur/grooming-records/internal/database"
	"github.com/golden-fur/grooming-records/internal/handler"
	"github.com/golden-fur/grooming-records/internal/logger"
	"github.com/golden-fur/grooming-records/internal/middleware"
	"github.com/golden-fur/grooming-records/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "grooming-records")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting grooming-records",
		zap.String("port", cfg.Port),
		zap.String("driver", cfg.DB.Driver),
	)

	// Open the records store. The store is constructed here and passed
	// down by reference; it is closed again at the end of shutdown.
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.PetModel{}, &repository.GroomingModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DB.URL(), cfg.MigrationsPath, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize repositories
	petRepo := repository.NewGormPetRepository(db)
	groomingRepo := repository.NewGormGroomingRepository(db)

	// Initialize application services
	petService := application.NewPetService(petRepo, groomingRepo, log)
	groomingService := application.NewGroomingService(groomingRepo, petRepo, log)

	// Initialize HTTP handlers
	petHandler := handler.NewPetHandler(petService)
	groomingHandler := handler.NewGroomingHandler(groomingService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(db, "grooming-records")
	healthHandler.RegisterRoutes(router)

	// Register routes
	petHandler.RegisterRoutes(&router.RouterGroup)
	groomingHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down grooming-records...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	// Close the records store last, after all in-flight requests drained
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}

	log.Info("grooming-records stopped")
}
