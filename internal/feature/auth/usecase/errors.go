// Package usecase implements registration and login.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when signing up with a registered email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for any failed login, whatever the cause.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a password is shorter than the minimum length.
	ErrWeakPassword = errors.New("password too short")
)
