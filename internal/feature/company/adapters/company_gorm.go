// Package adapters provides the gorm-backed company repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dividend_backend/internal/feature/company/domain/entity"
	"dividend_backend/internal/feature/company/usecase"
	"dividend_backend/internal/platform/db"
)

type companyRepository struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyRepository)(nil)

// NewCompanyRepository returns a CompanyRepository backed by db.
func NewCompanyRepository(db *gorm.DB) *companyRepository {
	return &companyRepository{db: db}
}

// Create inserts c. The unique ticker index turns a concurrent duplicate into ErrCompanyAlreadyExists.
func (r *companyRepository) Create(ctx context.Context, c *entity.Company) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *companyRepository) FindByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepository) List(ctx context.Context) ([]entity.Company, error) {
	var out []entity.Company
	if err := r.db.WithContext(ctx).Order("ticker ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
