package entity

import "time"

// JournalEntry is a free-text reflection, optionally tagged with a mood.
type JournalEntry struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"index;not null"`
	MoodID  *uint  `gorm:"index"`
	Content string `gorm:"type:text;not null"`

	CreatedAt time.Time
	// UpdatedAt is kept for schema parity; entries are never edited.
	UpdatedAt time.Time
}
