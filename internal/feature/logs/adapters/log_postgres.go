// Package adapters provides repository implementations for the logs feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"wellbeing_backend/internal/feature/logs/domain/entity"
	"wellbeing_backend/internal/feature/logs/usecase"
)

// logPostgres is a PostgreSQL implementation of the LogRepository interface.
type logPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure logPostgres implements LogRepository.
var _ usecase.LogRepository = (*logPostgres)(nil)

// NewLogRepository creates a new instance of logPostgres.
func NewLogRepository(db *gorm.DB) *logPostgres {
	return &logPostgres{db: db}
}

// CreateMoodLog inserts a mood log. logged_at is assigned on insert.
func (r *logPostgres) CreateMoodLog(ctx context.Context, log *entity.MoodLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// CreateJournalEntry inserts a journal entry. created_at and updated_at are assigned on insert.
func (r *logPostgres) CreateJournalEntry(ctx context.Context, entry *entity.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
