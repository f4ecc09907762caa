// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wellbeing_backend/internal/feature/moodcatalog/domain/entity"
	"wellbeing_backend/internal/feature/moodcatalog/usecase"
)

// missingMarker is stored for codes that do not exist in the catalog.
const missingMarker = "-"

// CachingMoodRepository decorates a MoodRepository with Redis caching.
// The catalog changes only at seed time, so entries live for the full TTL
// and are dropped explicitly with Invalidate.
type CachingMoodRepository struct {
	inner     usecase.MoodRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MoodRepository = (*CachingMoodRepository)(nil)

// NewCachingMoodRepository decorates a MoodRepository with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "moods".
func NewCachingMoodRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MoodRepository, namespace string) *CachingMoodRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "moods"
	}
	return &CachingMoodRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindIDByCode resolves a code, checking cache first then falling back to the database.
// Unknown codes are cached too so repeated bad input does not reach the database.
func (c *CachingMoodRepository) FindIDByCode(ctx context.Context, code string) (uint, bool, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindIDByCode(ctx, code)
	}

	key := c.codeKey(code)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if s == missingMarker {
			return 0, false, nil
		}
		if id, perr := strconv.ParseUint(s, 10, 64); perr == nil && id > 0 {
			return uint(id), true, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("mood cache read failed", "key", key, "error", err)
	}

	// 2) Fallback to database
	id, found, err := c.inner.FindIDByCode(ctx, code)
	if err != nil {
		return 0, false, err
	}

	// 3) Store in cache (best effort)
	val := missingMarker
	if found {
		val = strconv.FormatUint(uint64(id), 10)
	}
	_ = c.rdb.Set(ctx, key, val, c.ttl).Err()

	return id, found, nil
}

// List returns the catalog, checking cache first then falling back to the database.
func (c *CachingMoodRepository) List(ctx context.Context) ([]entity.Mood, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Mood
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// An empty catalog usually means seeding has not run yet; don't pin it.
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
		}
	}

	return out, nil
}

// Invalidate removes every cached catalog entry in this namespace.
func (c *CachingMoodRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.deleteByPattern(ctx, c.namespace+":*")
}

// codeKey generates the cache key for a single code lookup.
func (c *CachingMoodRepository) codeKey(code string) string {
	return fmt.Sprintf("%s:code:%s", c.namespace, safe(code))
}

// listKey generates the cache key for the full catalog.
func (c *CachingMoodRepository) listKey() string {
	return c.namespace + ":list"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMoodRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}
