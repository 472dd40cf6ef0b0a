package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yourusername/shagird-api/internal/config"
	"github.com/yourusername/shagird-api/internal/domain/repository"
	"github.com/yourusername/shagird-api/internal/handler"
	"github.com/yourusername/shagird-api/internal/middleware"
	fsRepo "github.com/yourusername/shagird-api/internal/repository/firestore"
	pgRepo "github.com/yourusername/shagird-api/internal/repository/postgres"
	"github.com/yourusername/shagird-api/internal/router"
	"github.com/yourusername/shagird-api/internal/service"
	"github.com/yourusername/shagird-api/pkg/database"
	"github.com/yourusername/shagird-api/pkg/logger"
	"github.com/yourusername/shagird-api/pkg/monitoring"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	gin.SetMode(cfg.Server.Mode)

	// Хранилище инициализируется один раз и дальше не переназначается.
	// Если подключиться не удалось, сервер все равно стартует и отвечает "Database not connected".
	store := openStore(context.Background(), cfg, zapLogger)
	defer func() {
		if err := store.Close(); err != nil {
			zapLogger.Warn("failed to close store", zap.Error(err))
		}
	}()

	location, err := time.LoadLocation(cfg.Progress.Timezone)
	if err != nil {
		zapLogger.Warn("unknown progress timezone, falling back to UTC",
			zap.String("timezone", cfg.Progress.Timezone), zap.Error(err))
		location = time.UTC
	}

	metrics := monitoring.New()

	// Инициализируем сервисы
	quizService := service.NewQuizService(store, cfg.Quiz)
	resultService := service.NewResultService(store, store, location, zapLogger.Named("result_service"))

	// Инициализируем обработчики
	quizHandler := handler.NewQuizHandler(quizService, resultService, metrics, zapLogger)
	healthHandler := handler.NewHealthHandler(store, zapLogger)

	// Rate limiting для /submit включается только при настроенном Redis
	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.Enabled() {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Warn("redis unavailable, submit rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			rateLimiter = middleware.NewRateLimiter(redisClient, zapLogger)
			zapLogger.Info("submit rate limiting enabled",
				zap.Int("max_requests", cfg.RateLimit.MaxRequests),
				zap.Int("window_sec", cfg.RateLimit.WindowSec))
		}
	}

	engine := router.Setup(router.Deps{
		Logger:        zapLogger,
		QuizHandler:   quizHandler,
		HealthHandler: healthHandler,
		Metrics:       metrics,
		RateLimiter:   rateLimiter,
		SubmitRateLimit: middleware.SubmitRateLimitConfig(
			cfg.RateLimit.MaxRequests,
			time.Duration(cfg.RateLimit.WindowSec)*time.Second,
		),
	})

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	zapLogger.Info("server exited properly")
}

// openStore подключается к выбранному хранилищу.
// При ошибке возвращается repository.Unavailable, чтобы запросы получали "Database not connected".
func openStore(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) repository.Store {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		if err := cfg.Database.Validate(); err != nil {
			zapLogger.Error("postgres is not configured", zap.Error(err))
			return repository.Unavailable{Cause: err}
		}
		db, err := database.NewPostgresDB(
			cfg.Database.PostgresConnectionString(),
			logger.NewGormLogger(zapLogger, gormlogger.Warn),
		)
		if err != nil {
			zapLogger.Error("postgres connection failed", zap.Error(err))
			return repository.Unavailable{Cause: err}
		}
		if err := database.EnsureSchema(db); err != nil {
			zapLogger.Error("postgres schema check failed", zap.Error(err))
			return repository.Unavailable{Cause: err}
		}
		store, err := pgRepo.NewStore(db)
		if err != nil {
			return repository.Unavailable{Cause: err}
		}
		zapLogger.Info("successfully connected to postgres")
		return store

	default:
		client, err := database.NewFirestoreClient(ctx, cfg.Firebase)
		if err != nil {
			zapLogger.Error("firebase connection failed", zap.Error(err))
			return repository.Unavailable{Cause: err}
		}
		store, err := fsRepo.NewStore(client)
		if err != nil {
			return repository.Unavailable{Cause: err}
		}
		zapLogger.Info("successfully connected to firebase")
		return store
	}
}
