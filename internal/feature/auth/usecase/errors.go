// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingCredentials is returned when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails.
	// It does not say whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
