// Package usecase implements brokerage account management.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when no account has the requested ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when the user already has an account with that name.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNotOwner is returned when the account belongs to another user.
	ErrNotOwner = errors.New("account belongs to another user")

	// ErrAccountInUse is returned when deleting an account that dividends still reference.
	ErrAccountInUse = errors.New("account has recorded dividends")

	// ErrInvalidName is returned for an empty or overlong account name.
	ErrInvalidName = errors.New("account name must be 1 to 100 characters")
)
