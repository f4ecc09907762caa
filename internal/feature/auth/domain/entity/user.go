// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// Users are created by signup and never updated or deleted by this service.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the optional display name.
	Name *string `gorm:"size:255"`

	// Email is the address used for authentication.
	// Callers lowercase it before sending; uniqueness is enforced by the index.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// It never leaves the service.
	Password string `gorm:"size:255;not null" json:"-"`

	// EmailTips records whether the user opted in to wellbeing tips by email.
	EmailTips bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
