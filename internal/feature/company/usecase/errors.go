// Package usecase implements company registration from a ticker symbol
// and historical dividend lookups.
package usecase

import "errors"

var (
	// ErrInvalidTicker is returned for a malformed ticker symbol.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrCompanyAlreadyExists is returned when the ticker is already registered.
	ErrCompanyAlreadyExists = errors.New("company already exists")

	// ErrCompanyNotFound is returned when no company has the requested ticker.
	ErrCompanyNotFound = errors.New("company not found")
)

// Lookup errors returned by market data providers.
var (
	// ErrLookupNotFound means the provider does not know the ticker.
	ErrLookupNotFound = errors.New("ticker not found by market data provider")

	// ErrLookupRateLimited means the provider, or the local call budget, refused the call.
	ErrLookupRateLimited = errors.New("market data provider rate limit reached")

	// ErrLookupUnavailable means the provider could not be reached or failed server-side.
	ErrLookupUnavailable = errors.New("market data provider unavailable")

	// ErrLookupUnknown covers any other provider failure, such as an unreadable response.
	ErrLookupUnknown = errors.New("market data lookup failed")
)
