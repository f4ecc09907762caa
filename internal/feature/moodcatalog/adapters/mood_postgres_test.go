package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wellbeing_backend/internal/feature/moodcatalog/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Moodテーブルを作成
	err = db.AutoMigrate(&entity.Mood{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedDefaultMoods は既定のムード語彙をデータベースに作成します。
func seedDefaultMoods(t *testing.T, db *gorm.DB) []entity.Mood {
	t.Helper()

	moods := entity.DefaultMoods()
	require.NoError(t, db.Create(&moods).Error, "failed to seed moods")
	return moods
}

// TestNewMoodRepository はNewMoodRepositoryコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewMoodRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewMoodRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestMoodPostgres_FindIDByCode はFindIDByCodeの各種シナリオをテーブル駆動テストで検証します。
func TestMoodPostgres_FindIDByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		code      string
		wantIndex int
		wantFound bool
	}{
		{name: "success: first mood", code: "okay", wantIndex: 0, wantFound: true},
		{name: "success: anxious", code: "anxious", wantIndex: 2, wantFound: true},
		{name: "success: last mood", code: "numb", wantIndex: 4, wantFound: true},
		{name: "absent: unknown code", code: "ecstatic", wantFound: false},
		// 正規化はusecase層の責務であり、リポジトリは完全一致で検索する
		{name: "absent: uppercase is not normalized here", code: "ANXIOUS", wantFound: false},
		{name: "absent: empty code", code: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			moods := seedDefaultMoods(t, db)
			repo := NewMoodRepository(db)

			id, found, err := repo.FindIDByCode(context.Background(), tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, moods[tt.wantIndex].ID, id)
			} else {
				assert.Zero(t, id)
			}
		})
	}
}

// TestMoodPostgres_List はsort_key順に全件が返されることを検証します。
func TestMoodPostgres_List(t *testing.T) {
	t.Parallel()

	t.Run("success: returns moods sorted by sort_key", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		// 挿入順とsort_key順を意図的にずらす
		require.NoError(t, db.Create(&entity.Mood{Code: "sad", Label: "Sad", SortKey: 2}).Error)
		require.NoError(t, db.Create(&entity.Mood{Code: "okay", Label: "Okay", SortKey: 1}).Error)
		repo := NewMoodRepository(db)

		moods, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, moods, 2)
		assert.Equal(t, "okay", moods[0].Code)
		assert.Equal(t, "sad", moods[1].Code)
	})

	t.Run("success: empty catalog", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewMoodRepository(db)

		moods, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, moods)
	})
}

// TestMoodPostgres_UniqueCode はコードの一意性がストレージで保証されることを検証します。
func TestMoodPostgres_UniqueCode(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedDefaultMoods(t, db)

	err := db.Create(&entity.Mood{Code: "sad", Label: "Sad again"}).Error

	assert.Error(t, err, "duplicate code must be rejected")
}
