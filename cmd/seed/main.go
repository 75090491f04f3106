// Seeds the guide catalogue from a YAML fixture file. Safe to rerun:
// guides already present (by name) are skipped.
//
//	go run ./cmd/seed [fixture-path]
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	myPostgresRepo "github.com/yatradesk/yatradesk-backend/internal/adapters/db/postgres"
	"github.com/yatradesk/yatradesk-backend/internal/infra/config"
	lg "github.com/yatradesk/yatradesk-backend/internal/infra/log"
	"github.com/yatradesk/yatradesk-backend/internal/infra/migrate"
	"github.com/yatradesk/yatradesk-backend/internal/seeds"
)

const defaultFixturePath = "internal/seeds/guides.yaml"

func main() {
	_ = godotenv.Load(".env.local")

	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	path := defaultFixturePath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	repo := myPostgresRepo.NewPostgresGuideRepo(db)
	n, err := seeds.SeedGuides(context.Background(), path, repo, zapLog)
	if err != nil {
		zapLog.Fatal("seeding failed", zap.Error(err))
	}
	zapLog.Info("seeding complete", zap.Int("guides", n), zap.String("fixture", path))
}
