// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wellbeing_backend/internal/api"
)

const (
	statusOK        = "ok"
	statusError     = "error"
	dbConnected     = "connected"
	msgDBConnFailed = "Database connection failed."
)

// pingTimeout はDB疎通確認の上限時間です。
const pingTimeout = 2 * time.Second

// Pinger はDBの疎通確認を行います。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health はDB疎通確認付きのヘルスチェックハンドラーを返します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		err := db.PingContext(ctx)
		if err != nil {
			slog.Error("health check failed", "error", err)
		}

		if c.Request.Method == http.MethodHead {
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.Status(http.StatusOK)
			return
		}

		if err != nil {
			msg := msgDBConnFailed
			c.JSON(http.StatusInternalServerError, api.HealthResponse{Status: statusError, Message: &msg})
			return
		}
		dbStatus := dbConnected
		c.JSON(http.StatusOK, api.HealthResponse{Status: statusOK, Db: &dbStatus})
	}
}
