// Package router はGinエンジンとルーティングを組み立てます。
package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "wellbeing_backend/internal/feature/auth/transport/handler"
	loghandler "wellbeing_backend/internal/feature/logs/transport/handler"
	moodhandler "wellbeing_backend/internal/feature/moodcatalog/transport/handler"
	"wellbeing_backend/internal/platform/http/handler"
	"wellbeing_backend/internal/platform/http/middleware"
	jwtmw "wellbeing_backend/internal/platform/jwt"
	"wellbeing_backend/internal/platform/metrics"
	"wellbeing_backend/internal/shared/ratelimiter"
)

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Auth *authhandler.AuthHandler
	Mood *moodhandler.MoodHandler
	Logs *loghandler.LogHandler
	DB   handler.Pinger
}

// Options はルーターの横断的な設定です。
type Options struct {
	// CORSAllowedOrigins が空の場合はすべてのオリジンを許可します。
	CORSAllowedOrigins []string
	// JWTSecret が空の場合、トークン検証ミドルウェアは登録しません。
	JWTSecret        string
	AuthRequireToken bool
	// AuthLimiter が nil の場合、認証エンドポイントの頻度制限は行いません。
	AuthLimiter ratelimiter.RateLimiterInterface
	// TrustedProxies は X-Forwarded-For を信頼するプロキシ（IP/CIDR）です。
	// 空の場合はどのプロキシも信頼せず、接続元アドレスをクライアントIPとします。
	TrustedProxies []string
}

// NewRouter はミドルウェアとルートを登録したGinエンジンを返します。
// TrustedProxies に不正な値が含まれる場合はエラーを返します。
func NewRouter(h Handlers, opts Options) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		metrics.Middleware(),
		cors.New(corsConfig(opts.CORSAllowedOrigins)),
	)

	// Prometheus
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")

	// 導通確認用（DB疎通込み）
	health := handler.Health(h.DB)
	api.GET("/health", health)
	api.HEAD("/health", health)
	api.OPTIONS("/health", health)

	// 認証（IP単位の頻度制限）
	auth := api.Group("/auth")
	if opts.AuthLimiter != nil {
		auth.Use(ratelimiter.Middleware(opts.AuthLimiter))
	}
	{
		// 新規ユーザー登録
		auth.POST("/signup", h.Auth.Signup)
		// ログイン
		auth.POST("/login", h.Auth.Login)
	}

	// ムード語彙（読み取り専用）
	api.GET("/moods", h.Mood.List)

	// 記録系。トークンがあれば検証し、userId と照合する
	logs := api.Group("")
	switch {
	case opts.JWTSecret != "" && opts.AuthRequireToken:
		logs.Use(jwtmw.RequireAuth(opts.JWTSecret))
	case opts.JWTSecret != "":
		logs.Use(jwtmw.OptionalAuth(opts.JWTSecret))
	}
	{
		logs.POST("/mood-logs", h.Logs.CreateMoodLog)
		logs.POST("/journal-entries", h.Logs.CreateJournalEntry)
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
