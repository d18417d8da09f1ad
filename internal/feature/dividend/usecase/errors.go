// Package usecase records dividend payments and keeps them scoped to their owner.
package usecase

import "errors"

var (
	// ErrDividendNotFound is returned when no dividend has the requested ID.
	ErrDividendNotFound = errors.New("dividend not found")

	// ErrNotOwner is returned when the dividend or account belongs to another user.
	ErrNotOwner = errors.New("dividend belongs to another user")

	// ErrCompanyNotFound is returned when the ticker is not registered.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCurrencyNotFound is returned when the currency is not registered.
	ErrCurrencyNotFound = errors.New("currency not found")

	// ErrAccountNotFound is returned when the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidPayoff is returned for a non-positive payoff, share count or rate.
	ErrInvalidPayoff = errors.New("payoff, shares and per_share must be positive")

	// ErrPayoffRequired is returned when neither payoff nor shares with per_share is given.
	ErrPayoffRequired = errors.New("either payoff or shares and per_share are required")

	// ErrInvalidDateRange is returned when start is after end.
	ErrInvalidDateRange = errors.New("start must not be after end")
)
