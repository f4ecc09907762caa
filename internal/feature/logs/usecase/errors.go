// Package usecase records mood check-ins and journal entries.
package usecase

import "errors"

var (
	// ErrInvalidUserID is returned when the user id is not a positive integer.
	ErrInvalidUserID = errors.New("a valid user id is required")

	// ErrMoodCodeRequired is returned when a mood check-in has no mood code.
	ErrMoodCodeRequired = errors.New("mood code is required")

	// ErrEmptyContent is returned when journal content is blank after trimming.
	ErrEmptyContent = errors.New("journal content is required")

	// ErrUserNotFound is returned when the owning user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidMoodCode is returned when a supplied mood code is not in the catalog.
	ErrInvalidMoodCode = errors.New("invalid mood code")
)
