// Package config はアプリケーション設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"wellbeing_backend/internal/platform/db"
	"wellbeing_backend/internal/platform/redis"
)

// Config はサーバー起動に必要な設定をまとめたものです。
type Config struct {
	Port          string
	RunMigrations bool

	DB               db.Config
	DBConnectTimeout time.Duration
	Redis            redis.Config

	JWTSecret        string
	JWTTTL           time.Duration
	AuthRequireToken bool

	CORSAllowedOrigins []string
	TrustedProxies     []string

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	ShutdownTimeout time.Duration

	LogLevel  slog.Level
	LogFormat string
}

// LoadDotEnv は .env があれば読み込みます。既存の環境変数は上書きしません。
func LoadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load は環境変数から設定を読み込みます。
// 値の形式が不正な場合はエラーを返します。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "3001"),
		DB:   db.LoadConfigFromEnv(),
		Redis: redis.Config{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		TrustedProxies:     splitList(os.Getenv("TRUSTED_PROXIES")),
		LogFormat:          strings.ToLower(getenv("LOG_FORMAT", "text")),
	}

	var err error
	if cfg.RunMigrations, err = parseBool("RUN_MIGRATIONS", false); err != nil {
		return Config{}, err
	}
	if cfg.AuthRequireToken, err = parseBool("AUTH_REQUIRE_TOKEN", false); err != nil {
		return Config{}, err
	}
	if cfg.DBConnectTimeout, err = parseDuration("DB_CONNECT_TIMEOUT", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.JWTTTL, err = parseDuration("JWT_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AuthRateLimitRPS, err = parseFloat("AUTH_RATE_LIMIT_RPS", 5); err != nil {
		return Config{}, err
	}
	if cfg.AuthRateLimitBurst, err = parseInt("AUTH_RATE_LIMIT_BURST", 10); err != nil {
		return Config{}, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.AuthRequireToken && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("AUTH_REQUIRE_TOKEN=true requires JWT_SECRET")
	}
	return cfg, nil
}

// TokensEnabled はJWTの発行・検証を行うかどうかを返します。
func (c Config) TokensEnabled() bool {
	return c.JWTSecret != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive number", key)
	}
	return f, nil
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

// splitList はカンマ区切りの値を空白除去して分割します。空要素は捨てます。
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
