// Package handler はlogsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellbeing_backend/internal/api"
	"wellbeing_backend/internal/feature/logs/domain/entity"
	"wellbeing_backend/internal/feature/logs/transport/http/dto"
	"wellbeing_backend/internal/feature/logs/usecase"
	jwtmw "wellbeing_backend/internal/platform/jwt"
	"wellbeing_backend/internal/platform/metrics"
)

const (
	msgInvalidBody       = "Invalid request body."
	msgInvalidUserID     = "A valid userId is required."
	msgMoodCodeRequired  = "moodCode is required."
	msgInvalidMoodCode   = "Invalid moodCode."
	msgContentRequired   = "Journal content is required."
	msgUserNotFound      = "User not found."
	msgForbidden         = "Token does not match userId."
	msgMoodLogFailed     = "Failed to save mood log."
	msgJournalSaveFailed = "Failed to save journal entry."
)

// LogUsecase は記録操作のユースケースを定義します。
type LogUsecase interface {
	RecordMood(ctx context.Context, in usecase.RecordMoodInput) (*entity.MoodLog, error)
	RecordJournal(ctx context.Context, in usecase.RecordJournalInput) (*entity.JournalEntry, error)
}

// LogHandler は気分記録とジャーナルのHTTPリクエストを処理します。
type LogHandler struct {
	logs LogUsecase
}

// NewLogHandler はLogHandlerの新しいインスタンスを生成します。
func NewLogHandler(logs LogUsecase) *LogHandler {
	return &LogHandler{logs: logs}
}

// CreateMoodLog は POST /api/mood-logs を処理します。
// - userId は数値または数値文字列を受け付ける
// - 検証順序: userId → moodCode → ユーザー存在 → moodCode解決
// - 成功時は201で {moodLog} を返却
func (h *LogHandler) CreateMoodLog(c *gin.Context) {
	var req api.MoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("mood log bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidBody})
		return
	}
	if !ownsUser(c, req.UserId) {
		return
	}

	in := usecase.RecordMoodInput{
		UserID: req.UserId.Uint(),
		Notes:  req.Notes,
	}
	if req.MoodCode != nil {
		in.MoodCode = *req.MoodCode
	}

	log, err := h.logs.RecordMood(c.Request.Context(), in)
	if err != nil {
		status, msg := logError(err, msgMoodLogFailed)
		if status == http.StatusInternalServerError {
			slog.Error("failed to save mood log", "error", err, "user_id", in.UserID)
		}
		c.JSON(status, api.ErrorResponse{Message: msg})
		return
	}

	slog.Info("mood logged", "user_id", log.UserID, "mood_id", log.MoodID)
	metrics.RecordEvent(metrics.EventMoodLog)
	c.JSON(http.StatusCreated, dto.NewMoodLogResponse(log))
}

// CreateJournalEntry は POST /api/journal-entries を処理します。
// - content は前後の空白を除去して保存
// - moodCode は任意。指定された場合のみ解決する
// - 成功時は201で {journalEntry} を返却
func (h *LogHandler) CreateJournalEntry(c *gin.Context) {
	var req api.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("journal bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msgInvalidBody})
		return
	}
	if !ownsUser(c, req.UserId) {
		return
	}

	in := usecase.RecordJournalInput{
		UserID:   req.UserId.Uint(),
		MoodCode: req.MoodCode,
	}
	if req.Content != nil {
		in.Content = *req.Content
	}

	entry, err := h.logs.RecordJournal(c.Request.Context(), in)
	if err != nil {
		status, msg := logError(err, msgJournalSaveFailed)
		if status == http.StatusInternalServerError {
			slog.Error("failed to save journal entry", "error", err, "user_id", in.UserID)
		}
		c.JSON(status, api.ErrorResponse{Message: msg})
		return
	}

	slog.Info("journal entry saved", "user_id", entry.UserID, "entry_id", entry.ID)
	metrics.RecordEvent(metrics.EventJournalEntry)
	c.JSON(http.StatusCreated, dto.NewJournalEntryResponse(entry))
}

// ownsUser はトークンの主体とリクエストの userId を照合します。
// トークンが無い場合は照合しません（必須化はミドルウェア側で行う）。
// 不一致の場合は403を書き込み false を返します。
func ownsUser(c *gin.Context, id *api.UserID) bool {
	if !id.Valid() {
		return true
	}
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		return true
	}
	sub, ok := v.(uint)
	if ok && sub == id.Uint() {
		return true
	}
	slog.Warn("token subject does not match userId", "token_user_id", v, "user_id", id.Uint())
	c.JSON(http.StatusForbidden, api.ErrorResponse{Message: msgForbidden})
	return false
}

// logError はユースケースのエラーをHTTPステータスとメッセージに変換します。
func logError(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return http.StatusBadRequest, msgInvalidUserID
	case errors.Is(err, usecase.ErrMoodCodeRequired):
		return http.StatusBadRequest, msgMoodCodeRequired
	case errors.Is(err, usecase.ErrEmptyContent):
		return http.StatusBadRequest, msgContentRequired
	case errors.Is(err, usecase.ErrInvalidMoodCode):
		return http.StatusBadRequest, msgInvalidMoodCode
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound, msgUserNotFound
	default:
		return http.StatusInternalServerError, fallback
	}
}
