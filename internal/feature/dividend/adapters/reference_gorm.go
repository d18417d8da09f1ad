package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dividend_backend/internal/feature/dividend/usecase"
)

type referenceLookup struct {
	db *gorm.DB
}

var _ usecase.ReferenceLookup = (*referenceLookup)(nil)

// NewReferenceLookup returns a ReferenceLookup reading the company, currency and account tables.
func NewReferenceLookup(db *gorm.DB) *referenceLookup {
	return &referenceLookup{db: db}
}

type idRow struct {
	ID     uint
	UserID uint
}

func (r *referenceLookup) take(ctx context.Context, table, column string, where string, arg any, notFound error) (idRow, error) {
	var row idRow
	err := r.db.WithContext(ctx).Table(table).Select(column).Where(where, arg).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return row, notFound
		}
		return row, err
	}
	return row, nil
}

func (r *referenceLookup) CompanyIDByTicker(ctx context.Context, ticker string) (uint, error) {
	row, err := r.take(ctx, "companies", "id", "ticker = ?", ticker, usecase.ErrCompanyNotFound)
	return row.ID, err
}

func (r *referenceLookup) CurrencyIDByName(ctx context.Context, name string) (uint, error) {
	row, err := r.take(ctx, "currencies", "id", "name = ?", name, usecase.ErrCurrencyNotFound)
	return row.ID, err
}

func (r *referenceLookup) AccountOwner(ctx context.Context, accountID uint) (uint, error) {
	row, err := r.take(ctx, "accounts", "user_id", "id = ?", accountID, usecase.ErrAccountNotFound)
	return row.UserID, err
}
