package main

import (
	"context"

	"go.uber.org/zap"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/pkg/logger"
	"gearguard/seeders"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatal("migrations failed", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := postgresql.Connect(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := seeders.New(pool, log).Run(ctx, cfg.DefaultCompany); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
}
