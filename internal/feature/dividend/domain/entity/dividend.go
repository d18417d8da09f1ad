// Package entity defines the domain entities for the dividend feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dividend is a single dividend payment received by a user.
//
// Payoff is the canonical amount. Shares and PerShare are kept when the
// payment was entered as a share count times a per-share rate.
type Dividend struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	CompanyID  uint      `gorm:"not null;index"`
	AccountID  uint      `gorm:"not null;index"`
	CurrencyID uint      `gorm:"not null;index"`
	ReceivedOn time.Time `gorm:"type:date;not null;index"`

	Payoff   decimal.Decimal  `gorm:"type:decimal(20,4);not null"`
	Shares   *decimal.Decimal `gorm:"type:decimal(20,6)"`
	PerShare *decimal.Decimal `gorm:"type:decimal(20,6)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name shared with the report queries.
func (Dividend) TableName() string {
	return "dividends"
}

// DividendView is a dividend joined with the names of the rows it references.
type DividendView struct {
	Dividend
	Ticker       string
	CompanyName  string
	AccountName  string
	CurrencyName string
}
