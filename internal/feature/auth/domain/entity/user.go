// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is a registered account holder. Every financial record is scoped to one user.
type User struct {
	ID uint `gorm:"primaryKey"`

	// Email is stored lower-cased and is unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash, never plaintext.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the users table name.
func (User) TableName() string {
	return "users"
}
