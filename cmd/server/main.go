package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kotatsu-vn/novel-backend/internal/api"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
	"github.com/kotatsu-vn/novel-backend/internal/core/service"
	"github.com/kotatsu-vn/novel-backend/internal/infrastructure/config"
	"github.com/kotatsu-vn/novel-backend/internal/infrastructure/db/postgres"
	redisinfra "github.com/kotatsu-vn/novel-backend/internal/infrastructure/db/redis"
	"github.com/kotatsu-vn/novel-backend/internal/infrastructure/mail"
	"github.com/kotatsu-vn/novel-backend/internal/infrastructure/storage"
	"github.com/kotatsu-vn/novel-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Postgres: connect, then run the one-time schema migration. ---
	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	// --- Redis (optional): enables the reset-password throttle. ---
	var rdb *goredis.Client
	var throttle ports.ResetThrottle
	if cfg.Redis.Addr != "" {
		rdb, err = redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		throttle = redisinfra.NewResetThrottle(rdb)
	}

	// --- Object storage ---
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage init failed")
	}

	// --- Services ---
	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, mail.NewMailer(cfg.Mail), throttle, cfg.JWTSecret, 24*time.Hour, log)
	novelService := service.NewNovelService(postgres.NewNovelRepository(db))
	projectService := service.NewProjectService(postgres.NewProjectRepository(db))
	uploadService := service.NewUploadService(store)

	// The reserved super-admin is seeded once here, not lazily per request.
	if err := authService.EnsureSuperAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("super admin seed failed")
	}

	e := api.NewRouter(api.Services{
		Auth:    authService,
		Novel:   novelService,
		Project: projectService,
		Upload:  uploadService,
	}, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
