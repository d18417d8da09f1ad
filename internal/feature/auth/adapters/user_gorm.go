// Package adapters provides the gorm-backed user repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dividend_backend/internal/feature/auth/domain/entity"
	"dividend_backend/internal/feature/auth/usecase"
	"dividend_backend/internal/platform/db"
)

type userRepository struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository returns a UserRepository backed by db.
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// Create inserts u, mapping a duplicate email to usecase.ErrEmailAlreadyExists.
func (r *userRepository) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
