// Package entity defines the domain entities for the account feature.
package entity

import "time"

// Account is a named brokerage account owned by a single user.
type Account struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_accounts_user_name,priority:1"`
	Name   string `gorm:"size:100;not null;uniqueIndex:idx_accounts_user_name,priority:2"`

	CreatedAt time.Time
}

// TableName pins the table name shared with the dividend and report queries.
func (Account) TableName() string {
	return "accounts"
}
