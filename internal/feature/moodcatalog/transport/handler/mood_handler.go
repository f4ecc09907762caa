// Package handler はmoodcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellbeing_backend/internal/api"
	"wellbeing_backend/internal/feature/moodcatalog/domain/entity"
)

// MoodUsecase はムード一覧取得のユースケースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MoodUsecase interface {
	ListMoods(ctx context.Context) ([]entity.Mood, error)
}

// MoodHandler はムードカタログに関するHTTPリクエストを処理します。
type MoodHandler struct {
	uc MoodUsecase
}

// NewMoodHandler は新しい MoodHandler を作成します。
func NewMoodHandler(uc MoodUsecase) *MoodHandler {
	return &MoodHandler{uc: uc}
}

// List はムードの一覧を返すAPIです。
// ストレージでエラーが発生した場合は詳細を隠して500を返します。
func (h *MoodHandler) List(c *gin.Context) {
	moods, err := h.uc.ListMoods(c.Request.Context())
	if err != nil {
		slog.Error("list moods failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to load moods."})
		return
	}
	out := make([]api.Mood, 0, len(moods))
	for _, m := range moods {
		out = append(out, api.Mood{Id: m.ID, Code: m.Code, Label: m.Label})
	}
	c.JSON(http.StatusOK, api.MoodListResponse{Moods: out})
}
