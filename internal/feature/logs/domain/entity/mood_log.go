// Package entity defines the domain entities for the logs feature.
package entity

import "time"

// MoodLog is one mood check-in. Every check-in is a new row; rows are never
// updated or merged.
type MoodLog struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"index;not null"`
	MoodID   uint      `gorm:"index;not null"`
	Notes    *string   `gorm:"type:text"`
	LoggedAt time.Time `gorm:"not null;autoCreateTime"`
}
