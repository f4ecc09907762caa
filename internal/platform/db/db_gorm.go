// Package db はデータベース接続・マイグレーション・初期データ投入を提供します。
package db

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverPostgres は本番で使用するドライバーです。
	DriverPostgres = "postgres"
	// DriverSQLite はローカル開発用のドライバーです。DB_NAME をファイルパスとして扱います。
	DriverSQLite = "sqlite"
)

// retryInterval は接続リトライの待機間隔です。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定を保持します。
type Config struct {
	Driver   string
	URL      string // DATABASE_URL。設定されている場合は個別項目より優先
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSL      bool
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
// 未設定の項目にはローカル開発向けの既定値を使用します。
func LoadConfigFromEnv() Config {
	driver := getenv("DB_DRIVER", DriverPostgres)
	name := getenv("DB_NAME", "milestone6")
	if driver == DriverSQLite && os.Getenv("DB_NAME") == "" {
		name = "wellbeing.db"
	}
	return Config{
		Driver:   driver,
		URL:      os.Getenv("DATABASE_URL"),
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		Name:     name,
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", "postgres"),
		SSL:      os.Getenv("DB_SSL") == "true",
	}
}

// BuildDSN は設定から接続文字列を組み立てます。
// SQLiteの場合はファイルパスをそのまま返します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Name
	}
	if cfg.URL != "" {
		return cfg.URL
	}

	sslMode := "disable"
	if cfg.SSL {
		// 証明書検証は行わず、暗号化のみ要求する
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替え可能です。
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor はドライバー名に対応するOpenerを返します。
func OpenerFor(driver string) Opener {
	if driver == DriverSQLite {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
}

// ConnectWithRetry はtimeoutに達するまでretryInterval間隔で接続を試行します。
// コンテナ起動直後などDBの準備が整っていない場合に備えます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempt, err)
		}
		slog.Warn("DB connect failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(retryInterval)
	}
}

// Open は設定に従って接続し、コネクションプールを構成します。
func Open(cfg Config, timeout time.Duration) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, OpenerFor(cfg.Driver))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// SQLiteは単一ライターのため接続を1本に制限
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	slog.Info("DB connection successful", "driver", cfg.Driver, "host", cfg.Host, "database", cfg.Name)
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
