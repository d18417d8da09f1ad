// Package entity defines the domain entities for the company feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxTickerLength is the longest ticker symbol a company may have.
const MaxTickerLength = 8

// Company is a dividend-paying issuer identified by its ticker.
type Company struct {
	ID uint `gorm:"primaryKey"`

	// Name is the issuer's display name as reported by the metadata provider.
	Name string `gorm:"size:255;not null"`

	// Ticker is the upper-case exchange symbol. It is unique across all companies.
	Ticker string `gorm:"uniqueIndex;size:8;not null"`

	Description string `gorm:"type:text"`

	// IconImage references the locally stored copy of the icon, if one was saved.
	IconImage string `gorm:"size:255"`

	// IconURL is the provider's original icon location.
	IconURL string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name shared with the dividend and report queries.
func (Company) TableName() string {
	return "companies"
}

// Metadata is the descriptive data a provider returns for a ticker.
type Metadata struct {
	Name        string
	Ticker      string
	Description string
	IconURL     string
}

// DividendAnnouncement is one historical dividend published by a market data provider.
type DividendAnnouncement struct {
	Date     time.Time
	Amount   decimal.Decimal
	Currency string
	Source   string
}
