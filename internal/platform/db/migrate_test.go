package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "wellbeing_backend/internal/feature/auth/domain/entity"
	logentity "wellbeing_backend/internal/feature/logs/domain/entity"
	moodentity "wellbeing_backend/internal/feature/moodcatalog/domain/entity"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	return db
}

// TestMigrate は全テーブルが作成されることを検証します。
func TestMigrate(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)

	require.NoError(t, Migrate(db))

	for _, model := range []any{&authentity.User{}, &moodentity.Mood{}, &logentity.MoodLog{}, &logentity.JournalEntry{}} {
		assert.True(t, db.Migrator().HasTable(model), "table for %T should exist", model)
	}
}

// TestMigrate_Idempotent は繰り返し実行してもエラーにならないことを検証します。
func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)

	require.NoError(t, Migrate(db))
	assert.NoError(t, Migrate(db))
}

// TestSeedMoods は既定のムードが投入され、再実行しても重複しないことを検証します。
func TestSeedMoods(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	require.NoError(t, Migrate(db))
	ctx := context.Background()

	require.NoError(t, SeedMoods(ctx, db))
	require.NoError(t, SeedMoods(ctx, db))

	var moods []moodentity.Mood
	require.NoError(t, db.Order("sort_key").Find(&moods).Error)

	codes := make([]string, 0, len(moods))
	for _, m := range moods {
		codes = append(codes, m.Code)
	}
	assert.Equal(t, []string{"okay", "sad", "anxious", "frustrated", "numb"}, codes)
}

// TestSeedMoods_KeepsExistingLabel は既存のコードのラベルを上書きしないことを検証します。
func TestSeedMoods_KeepsExistingLabel(t *testing.T) {
	t.Parallel()

	db := openSQLite(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&moodentity.Mood{Code: "sad", Label: "Blue", SortKey: 99}).Error)

	require.NoError(t, SeedMoods(context.Background(), db))

	var sad moodentity.Mood
	require.NoError(t, db.Where("code = ?", "sad").First(&sad).Error)
	assert.Equal(t, "Blue", sad.Label)

	var count int64
	require.NoError(t, db.Model(&moodentity.Mood{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}
