// Package usecase implements the currency reference list.
package usecase

import "errors"

var (
	// ErrCurrencyAlreadyExists is returned when the code is already registered.
	ErrCurrencyAlreadyExists = errors.New("currency already exists")

	// ErrUnknownCurrency is returned for codes that are not ISO 4217.
	ErrUnknownCurrency = errors.New("unknown currency code")
)
