package main

import (
	"context"
	"log"

	"github.com/sprintops/sprintops/internal/config"
	"github.com/sprintops/sprintops/internal/logger"
	"github.com/sprintops/sprintops/internal/migrations"
	"github.com/sprintops/sprintops/internal/seed"
	"github.com/sprintops/sprintops/internal/storage/postgres"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := postgres.New(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("connect database failed", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Run(ctx, cfg.DatabaseURL, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	if err := seed.Run(ctx, db, zapLogger, cfg.DemoEmail); err != nil {
		zapLogger.Fatal("seed failed", zap.Error(err))
	}
}
