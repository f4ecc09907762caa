// Package usecase implements the read-only mood catalog.
package usecase

import (
	"context"
	"strings"

	"wellbeing_backend/internal/feature/moodcatalog/domain/entity"
)

// MoodRepository abstracts the persistence layer for the mood vocabulary.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MoodRepository interface {
	// FindIDByCode returns the id for an exact (already lowercased) code.
	// found is false when no mood has that code.
	FindIDByCode(ctx context.Context, code string) (id uint, found bool, err error)

	// List returns every mood ordered by sort key.
	List(ctx context.Context) ([]entity.Mood, error)
}

// MoodUsecase provides lookups against the mood catalog.
type MoodUsecase struct {
	repo MoodRepository
}

// NewMoodUsecase creates a new MoodUsecase with the given repository.
func NewMoodUsecase(r MoodRepository) *MoodUsecase {
	return &MoodUsecase{repo: r}
}

// Resolve maps a mood code to its id. The code is trimmed and lowercased
// before the lookup. An unknown code is not an error: found is false and
// callers decide what absence means for them.
func (u *MoodUsecase) Resolve(ctx context.Context, code string) (uint, bool, error) {
	code = NormalizeCode(code)
	if code == "" {
		return 0, false, nil
	}
	return u.repo.FindIDByCode(ctx, code)
}

// ListMoods returns the whole catalog.
func (u *MoodUsecase) ListMoods(ctx context.Context) ([]entity.Mood, error) {
	return u.repo.List(ctx)
}

// NormalizeCode is the canonical form used for catalog keys.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
