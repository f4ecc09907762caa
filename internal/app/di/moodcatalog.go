// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	moodadapters "wellbeing_backend/internal/feature/moodcatalog/adapters"
	"wellbeing_backend/internal/feature/moodcatalog/usecase"
	"wellbeing_backend/internal/platform/cache"
)

// moodCacheTTL is how long catalog lookups stay in Redis.
const moodCacheTTL = time.Hour

// NewMoodRepository creates a MoodRepository implementation.
// If Redis is available, the database repository is wrapped with a read-through cache.
// Otherwise, it reads the database directly.
func NewMoodRepository(rdb *redis.Client, db *gorm.DB) usecase.MoodRepository {
	inner := moodadapters.NewMoodRepository(db)
	if rdb != nil {
		return cache.NewCachingMoodRepository(rdb, moodCacheTTL, inner, "moods")
	}
	return inner
}

// InvalidateMoodCache drops cached catalog entries after the catalog changes.
// It is a no-op when Redis is not configured.
func InvalidateMoodCache(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return cache.NewCachingMoodRepository(rdb, moodCacheTTL, nil, "moods").Invalidate(ctx)
}
