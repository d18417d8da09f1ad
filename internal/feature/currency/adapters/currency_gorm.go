// Package adapters provides the gorm-backed currency repository.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"dividend_backend/internal/feature/currency/domain/entity"
	"dividend_backend/internal/feature/currency/usecase"
	"dividend_backend/internal/platform/db"
)

type currencyRepository struct {
	db *gorm.DB
}

var _ usecase.CurrencyRepository = (*currencyRepository)(nil)

// NewCurrencyRepository returns a CurrencyRepository backed by db.
func NewCurrencyRepository(db *gorm.DB) *currencyRepository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) Create(ctx context.Context, c *entity.Currency) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrCurrencyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *currencyRepository) List(ctx context.Context) ([]entity.Currency, error) {
	var out []entity.Currency
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
