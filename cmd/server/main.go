package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"wellbeing_backend/internal/app/config"
	"wellbeing_backend/internal/app/di"
	"wellbeing_backend/internal/app/router"
	authadapters "wellbeing_backend/internal/feature/auth/adapters"
	authhandler "wellbeing_backend/internal/feature/auth/transport/handler"
	authusecase "wellbeing_backend/internal/feature/auth/usecase"
	logadapters "wellbeing_backend/internal/feature/logs/adapters"
	loghandler "wellbeing_backend/internal/feature/logs/transport/handler"
	logusecase "wellbeing_backend/internal/feature/logs/usecase"
	moodhandler "wellbeing_backend/internal/feature/moodcatalog/transport/handler"
	moodusecase "wellbeing_backend/internal/feature/moodcatalog/usecase"
	infradb "wellbeing_backend/internal/platform/db"
	infraredis "wellbeing_backend/internal/platform/redis"
	"wellbeing_backend/internal/shared/ratelimiter"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.Open(cfg.DB, cfg.DBConnectTimeout)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close DB pool", "error", err)
		}
		slog.Info("DB pool closed")
	}()

	if cfg.RunMigrations {
		if err := infradb.Migrate(db); err != nil {
			return err
		}
		if err := infradb.SeedMoods(ctx, db); err != nil {
			return err
		}
		slog.Info("migrations applied")
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
			if cfg.RunMigrations {
				if err := di.InvalidateMoodCache(ctx, rdb); err != nil {
					slog.Warn("failed to invalidate mood cache", "error", err)
				}
			}
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	moodRepo := di.NewMoodRepository(rdb, db)
	logRepo := logadapters.NewLogRepository(db)

	// Usecase
	if !cfg.TokensEnabled() {
		slog.Warn("JWT_SECRET is not set. Tokens will not be issued or verified.")
	}
	authUC := authusecase.NewAuthUsecase(userRepo, di.NewTokenGenerator(cfg.JWTSecret, cfg.JWTTTL))
	moodUC := moodusecase.NewMoodUsecase(moodRepo)
	logUC := logusecase.NewLogUsecase(logRepo, userRepo, moodUC)

	// Handler
	limiter := ratelimiter.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	limiter.StartCleanup(time.Minute, ctx.Done())

	engine, err := router.NewRouter(router.Handlers{
		Auth: authhandler.NewAuthHandler(authUC),
		Mood: moodhandler.NewMoodHandler(moodUC),
		Logs: loghandler.NewLogHandler(logUC),
		DB:   sqlDB,
	}, router.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		JWTSecret:          cfg.JWTSecret,
		AuthRequireToken:   cfg.AuthRequireToken,
		AuthLimiter:        limiter,
		TrustedProxies:     cfg.TrustedProxies,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// setupLogger はLOG_FORMAT/LOG_LEVELに従ってデフォルトロガーを設定します。
func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
