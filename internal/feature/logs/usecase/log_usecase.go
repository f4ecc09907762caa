package usecase

import (
	"context"
	"fmt"
	"strings"

	"wellbeing_backend/internal/feature/logs/domain/entity"
)

// LogRepository abstracts the persistence of mood logs and journal entries.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type LogRepository interface {
	// CreateMoodLog inserts a new mood log and fills in its id and timestamp.
	CreateMoodLog(ctx context.Context, log *entity.MoodLog) error

	// CreateJournalEntry inserts a new journal entry and fills in its id and timestamps.
	CreateJournalEntry(ctx context.Context, entry *entity.JournalEntry) error
}

// UserChecker reports whether a user exists.
type UserChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// MoodResolver maps a mood code to its catalog id.
type MoodResolver interface {
	Resolve(ctx context.Context, code string) (id uint, found bool, err error)
}

// RecordMoodInput is a validated mood check-in request.
type RecordMoodInput struct {
	UserID   uint
	MoodCode string
	Notes    *string
}

// RecordJournalInput is a validated journal request.
type RecordJournalInput struct {
	UserID   uint
	Content  string
	MoodCode *string
}

// LogUsecase records mood check-ins and journal entries for existing users.
// It holds no state between calls.
type LogUsecase struct {
	logs  LogRepository
	users UserChecker
	moods MoodResolver
}

// NewLogUsecase creates a LogUsecase.
func NewLogUsecase(logs LogRepository, users UserChecker, moods MoodResolver) *LogUsecase {
	return &LogUsecase{logs: logs, users: users, moods: moods}
}

// RecordMood stores a mood check-in. Input is validated before any storage
// access; the user must exist and the code must resolve in the catalog.
func (u *LogUsecase) RecordMood(ctx context.Context, in RecordMoodInput) (*entity.MoodLog, error) {
	if in.UserID == 0 {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(in.MoodCode) == "" {
		return nil, ErrMoodCodeRequired
	}

	if err := u.ensureUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	moodID, err := u.resolveMood(ctx, in.MoodCode)
	if err != nil {
		return nil, err
	}

	log := &entity.MoodLog{
		UserID: in.UserID,
		MoodID: moodID,
		Notes:  in.Notes,
	}
	if err := u.logs.CreateMoodLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save mood log: %w", err)
	}
	return log, nil
}

// RecordJournal stores a journal entry with trimmed content. A blank or
// absent mood code leaves the entry untagged.
func (u *LogUsecase) RecordJournal(ctx context.Context, in RecordJournalInput) (*entity.JournalEntry, error) {
	if in.UserID == 0 {
		return nil, ErrInvalidUserID
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if err := u.ensureUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	var moodID *uint
	if in.MoodCode != nil && strings.TrimSpace(*in.MoodCode) != "" {
		id, err := u.resolveMood(ctx, *in.MoodCode)
		if err != nil {
			return nil, err
		}
		moodID = &id
	}

	entry := &entity.JournalEntry{
		UserID:  in.UserID,
		MoodID:  moodID,
		Content: content,
	}
	if err := u.logs.CreateJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	return entry, nil
}

func (u *LogUsecase) ensureUser(ctx context.Context, id uint) error {
	ok, err := u.users.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

func (u *LogUsecase) resolveMood(ctx context.Context, code string) (uint, error) {
	id, found, err := u.moods.Resolve(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve mood: %w", err)
	}
	if !found {
		return 0, ErrInvalidMoodCode
	}
	return id, nil
}
