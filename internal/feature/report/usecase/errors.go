// Package usecase aggregates a user's dividends into dense chart series.
package usecase

import "errors"

var (
	// ErrInvalidCurrency is returned for a currency code that is not ISO 4217.
	ErrInvalidCurrency = errors.New("unknown currency code")

	// ErrInvalidWindow is returned when for_n_years is negative or above MaxYears.
	ErrInvalidWindow = errors.New("for_n_years must be between 0 and 50")

	// ErrInvalidLimit is returned for a negative limit.
	ErrInvalidLimit = errors.New("limit must not be negative")

	// ErrInvalidDateRange is returned when start is after end.
	ErrInvalidDateRange = errors.New("start must not be after end")
)
