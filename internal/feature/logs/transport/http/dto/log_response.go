// Package dto converts log entities to the API models returned over HTTP.
package dto

import (
	"wellbeing_backend/internal/api"
	"wellbeing_backend/internal/feature/logs/domain/entity"
)

// NewMoodLogResponse wraps a stored mood log as {"moodLog": ...}.
func NewMoodLogResponse(l *entity.MoodLog) api.MoodLogResponse {
	return api.MoodLogResponse{
		MoodLog: api.MoodLog{
			Id:       l.ID,
			UserId:   l.UserID,
			MoodId:   l.MoodID,
			Notes:    l.Notes,
			LoggedAt: l.LoggedAt,
		},
	}
}

// NewJournalEntryResponse wraps a stored journal entry as {"journalEntry": ...}.
func NewJournalEntryResponse(e *entity.JournalEntry) api.JournalEntryResponse {
	return api.JournalEntryResponse{
		JournalEntry: api.JournalEntry{
			Id:        e.ID,
			UserId:    e.UserID,
			MoodId:    e.MoodID,
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		},
	}
}
