package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"wellbeing_backend/internal/app/config"
	"wellbeing_backend/internal/app/di"
	infradb "wellbeing_backend/internal/platform/db"
	infraredis "wellbeing_backend/internal/platform/redis"
)

// migrate はスキーマを作成・更新し、ムード語彙を投入します。
// Redisが設定されている場合はカタログのキャッシュを破棄します。
func main() {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrate ok")
}

func run(cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := infradb.Open(cfg.DB, cfg.DBConnectTimeout)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := infradb.Migrate(db); err != nil {
		return err
	}
	if err := infradb.SeedMoods(ctx, db); err != nil {
		return err
	}

	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable. Cached catalog entries expire on their own.")
			return nil
		}
		defer func() { _ = rdb.Close() }()
		if err := di.InvalidateMoodCache(ctx, rdb); err != nil {
			slog.Warn("failed to invalidate mood cache", "error", err)
		}
	}
	return nil
}
