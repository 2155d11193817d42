package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/wordnest/backend/internal/application/identity"
	learningapp "github.com/wordnest/backend/internal/application/learning"
	"github.com/wordnest/backend/internal/domain/identity"
	"github.com/wordnest/backend/internal/domain/learning"
	"github.com/wordnest/backend/internal/infrastructure/auth"
	"github.com/wordnest/backend/internal/infrastructure/config"
	"github.com/wordnest/backend/internal/infrastructure/logger"
	"github.com/wordnest/backend/internal/infrastructure/persistence"
	"github.com/wordnest/backend/internal/infrastructure/seed"
	"github.com/wordnest/backend/internal/infrastructure/storage"
	"github.com/wordnest/backend/internal/interfaces/http/handler"
	"github.com/wordnest/backend/internal/interfaces/http/middleware"
	"github.com/wordnest/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting wordnest backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Connect to the database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.DB.AutoMigrate(
		&identity.User{},
		&learning.Category{},
		&learning.LearningItem{},
		&learning.Pronunciation{},
	); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Seed the starter vocabulary on a fresh database
	if err := seed.NewSeeder(db.DB, log).Run(context.Background()); err != nil {
		log.Fatal("Failed to seed database", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	pronunciationRepo := persistence.NewGormPronunciationRepository(db.DB)

	// Infrastructure services
	tokens := auth.NewTokenService(cfg.JWT)
	files := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)

	// Application services
	categoryService := learningapp.NewCategoryService(categoryRepo, log)
	itemService := learningapp.NewItemService(itemRepo, categoryService, userRepo, pronunciationRepo, files, log)
	pronunciationService := learningapp.NewPronunciationService(pronunciationRepo, itemRepo, files, log)
	authService := identityapp.NewAuthService(userRepo, tokens, cfg.Admin, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig(cfg)),
	)

	router.NewRouter(engine).
		Register(handler.NewAuthHandler(authService, tokens)).
		Register(handler.NewCategoryHandler(categoryService, tokens)).
		Register(handler.NewItemHandler(itemService, tokens)).
		Register(handler.NewPronunciationHandler(pronunciationService, tokens)).
		Register(handler.NewHealthHandler(db)).
		Static(cfg.Upload.BaseURL, cfg.Upload.Dir).
		Setup()

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	return corsCfg
}
