package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yourusername/shagird-api/internal/config"
	"github.com/yourusername/shagird-api/internal/domain/repository"
	fsRepo "github.com/yourusername/shagird-api/internal/repository/firestore"
	pgRepo "github.com/yourusername/shagird-api/internal/repository/postgres"
	"github.com/yourusername/shagird-api/pkg/database"
	"github.com/yourusername/shagird-api/pkg/logger"
)

// Загружает вопросы из YAML файла в настроенное хранилище (quizzes/{subject}/questions).
// Только для локальной разработки.
func main() {
	file := flag.String("file", "questions.yaml", "path to the questions YAML file")
	dryRun := flag.Bool("dry-run", false, "parse the file and print a summary without writing")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	seed, err := ParseSeed(data)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	subjects := make([]string, 0, len(seed))
	for subject := range seed {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	if *dryRun {
		for _, subject := range subjects {
			fmt.Printf("%s: %d questions\n", subject, len(seed[subject]))
		}
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(logger.Options{Level: cfg.Log.Level})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	store, err := openStore(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, subject := range subjects {
		if err := store.CreateBatch(ctx, subject, seed[subject]); err != nil {
			zapLogger.Fatal("failed to seed subject", zap.String("subject", subject), zap.Error(err))
		}
		zapLogger.Info("subject seeded", zap.String("subject", subject), zap.Int("questions", len(seed[subject])))
	}
}

func openStore(cfg *config.Config, zapLogger *zap.Logger) (repository.Store, error) {
	if cfg.Store.Backend == config.BackendPostgres {
		if err := cfg.Database.Validate(); err != nil {
			return nil, err
		}
		db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), logger.NewGormLogger(zapLogger, gormlogger.Warn))
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(db); err != nil {
			return nil, err
		}
		return pgRepo.NewStore(db)
	}

	client, err := database.NewFirestoreClient(context.Background(), cfg.Firebase)
	if err != nil {
		return nil, err
	}
	return fsRepo.NewStore(client)
}
