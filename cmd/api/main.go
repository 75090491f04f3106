package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/db/memory"
	myPostgresRepo "github.com/yatradesk/yatradesk-backend/internal/adapters/db/postgres"
	httpapi "github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http"
	"github.com/yatradesk/yatradesk-backend/internal/app/auth/jwt"
	authsvc "github.com/yatradesk/yatradesk-backend/internal/app/auth/service"
	guidesvc "github.com/yatradesk/yatradesk-backend/internal/app/guide/service"
	"github.com/yatradesk/yatradesk-backend/internal/domain/guide"
	"github.com/yatradesk/yatradesk-backend/internal/infra/config"
	lg "github.com/yatradesk/yatradesk-backend/internal/infra/log"
	"github.com/yatradesk/yatradesk-backend/internal/infra/migrate"
	"github.com/yatradesk/yatradesk-backend/internal/infra/server"
)

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

	userRepo := myPostgresRepo.NewPostgresUserRepo(db)

	var guideRepo guide.Repo
	switch cfg.GuideStore {
	case config.GuideStoreMemory:
		guideRepo = memory.NewGuideRepo()
		zapLog.Warn("guide store is in-memory, data will not survive restarts")
	default:
		guideRepo = myPostgresRepo.NewPostgresGuideRepo(db)
	}

	tokens, err := jwt.NewTokenIssuer(cfg)
	if err != nil {
		zapLog.Fatal("failed to init token issuer", zap.Error(err))
	}

	authService := authsvc.New(userRepo, tokens, zapLog)
	guideService := guidesvc.New(guideRepo)

	router := httpapi.NewRouter(cfg, zapLog, authService, guideService, tokens)

	rootCtx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		return server.StartHTTPServer(ctx, cfg, router, zapLog)
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
