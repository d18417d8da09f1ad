// Package entity defines the domain entities for the currency feature.
package entity

// Currency is a reference currency identified by its ISO 4217 code.
type Currency struct {
	ID uint `gorm:"primaryKey"`

	// Name is the upper-case ISO 4217 code, e.g. "USD".
	Name string `gorm:"uniqueIndex;size:3;not null"`
}

// TableName pins the table name shared with the dividend and report queries.
func (Currency) TableName() string {
	return "currencies"
}
