// Package adapters はmoodcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wellbeing_backend/internal/feature/moodcatalog/domain/entity"
	"wellbeing_backend/internal/feature/moodcatalog/usecase"
)

// moodPostgres はMoodRepositoryインターフェースのPostgreSQL実装です。
type moodPostgres struct {
	db *gorm.DB
}

var _ usecase.MoodRepository = (*moodPostgres)(nil)

// NewMoodRepository は指定されたDB接続でmoodPostgresリポジトリの新しいインスタンスを生成します。
func NewMoodRepository(db *gorm.DB) *moodPostgres {
	return &moodPostgres{db: db}
}

// FindIDByCode はコードに一致するムードのIDを返します。
// 該当なしの場合は found=false でエラーは返しません。
func (r *moodPostgres) FindIDByCode(ctx context.Context, code string) (uint, bool, error) {
	var m entity.Mood
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("code = ?", code).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return m.ID, true, nil
}

// List はsort_key順にすべてのムードを返します。
func (r *moodPostgres) List(ctx context.Context) ([]entity.Mood, error) {
	var moods []entity.Mood
	if err := r.db.WithContext(ctx).
		Order("sort_key ASC").
		Order("id ASC").
		Find(&moods).Error; err != nil {
		return nil, err
	}
	return moods, nil
}
