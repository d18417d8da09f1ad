// Package adapters provides the gorm-backed account repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dividend_backend/internal/feature/account/domain/entity"
	"dividend_backend/internal/feature/account/usecase"
	"dividend_backend/internal/platform/db"
)

type accountRepository struct {
	db *gorm.DB
}

var _ usecase.AccountRepository = (*accountRepository)(nil)

// NewAccountRepository returns an AccountRepository backed by db.
func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrAccountAlreadyExists
		}
		return err
	}
	return nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Account, error) {
	var out []entity.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Account{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) HasDividends(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Table("dividends").Where("account_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
