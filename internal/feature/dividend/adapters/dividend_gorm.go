// Package adapters provides the gorm-backed dividend repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/dividend/usecase"
)

const viewColumns = "dividends.*, " +
	"companies.ticker AS ticker, companies.name AS company_name, " +
	"accounts.name AS account_name, currencies.name AS currency_name"

type dividendRepository struct {
	db *gorm.DB
}

var _ usecase.DividendRepository = (*dividendRepository)(nil)

// NewDividendRepository returns a DividendRepository backed by db.
func NewDividendRepository(db *gorm.DB) *dividendRepository {
	return &dividendRepository{db: db}
}

func (r *dividendRepository) Create(ctx context.Context, d *entity.Dividend) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dividendRepository) Update(ctx context.Context, d *entity.Dividend) error {
	res := r.db.WithContext(ctx).Model(&entity.Dividend{ID: d.ID}).Select("*").Omit("id", "created_at").Updates(d)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrDividendNotFound
	}
	return nil
}

func (r *dividendRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Dividend{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrDividendNotFound
	}
	return nil
}

func (r *dividendRepository) FindByID(ctx context.Context, id uint) (*entity.Dividend, error) {
	var d entity.Dividend
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrDividendNotFound
		}
		return nil, err
	}
	return &d, nil
}

// views selects dividends joined with the names of their company, account and currency.
func (r *dividendRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("dividends").
		Select(viewColumns).
		Joins("JOIN companies ON companies.id = dividends.company_id").
		Joins("JOIN accounts ON accounts.id = dividends.account_id").
		Joins("JOIN currencies ON currencies.id = dividends.currency_id")
}

func (r *dividendRepository) FindView(ctx context.Context, id uint) (*entity.DividendView, error) {
	var out []entity.DividendView
	if err := r.views(ctx).Where("dividends.id = ?", id).Limit(1).Scan(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, usecase.ErrDividendNotFound
	}
	return &out[0], nil
}

func (r *dividendRepository) List(ctx context.Context, f usecase.ListFilter) ([]entity.DividendView, error) {
	q := r.views(ctx).Where("dividends.user_id = ?", f.UserID)
	if f.Start != nil {
		q = q.Where("dividends.received_on >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("dividends.received_on <= ?", *f.End)
	}
	if f.Currency != "" {
		q = q.Where("currencies.name = ?", f.Currency)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	out := []entity.DividendView{}
	if err := q.Order("dividends.received_on ASC").Order("dividends.id ASC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
