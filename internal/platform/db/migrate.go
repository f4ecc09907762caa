package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "wellbeing_backend/internal/feature/auth/domain/entity"
	logentity "wellbeing_backend/internal/feature/logs/domain/entity"
	moodentity "wellbeing_backend/internal/feature/moodcatalog/domain/entity"
)

// foreignKeys はPostgreSQLでのみ適用する外部キー制約です。
// 既存の制約がある場合は何もしないため、繰り返し実行できます。
var foreignKeys = []struct {
	name, table, column, ref, onDelete string
}{
	{"fk_mood_logs_user", "mood_logs", "user_id", "users", "CASCADE"},
	{"fk_mood_logs_mood", "mood_logs", "mood_id", "moods", "RESTRICT"},
	{"fk_journal_entries_user", "journal_entries", "user_id", "users", "CASCADE"},
	{"fk_journal_entries_mood", "journal_entries", "mood_id", "moods", "SET NULL"},
}

// Migrate はテーブルを作成・更新し、PostgreSQLでは外部キー制約を追加します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&moodentity.Mood{},
		&logentity.MoodLog{},
		&logentity.JournalEntry{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	if db.Dialector.Name() != DriverPostgres {
		return nil
	}
	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
		ALTER TABLE %[2]s ADD CONSTRAINT %[1]s
			FOREIGN KEY (%[3]s) REFERENCES %[4]s(id) ON DELETE %[5]s;
	END IF;
END $$;`, fk.name, fk.table, fk.column, fk.ref, fk.onDelete)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("constraint exec failed: %w (name=%s)", err, fk.name)
		}
	}
	return nil
}

// SeedMoods は既定のムード語彙を投入します。既存のコードは上書きしません。
func SeedMoods(ctx context.Context, db *gorm.DB) error {
	moods := moodentity.DefaultMoods()
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&moods).Error
	if err != nil {
		return fmt.Errorf("failed to seed moods: %w", err)
	}
	return nil
}
