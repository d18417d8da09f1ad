package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"dividend_backend/internal/feature/account/domain/entity"
)

const maxNameLength = 100

// AccountRepository persists accounts.
type AccountRepository interface {
	// Create yields ErrAccountAlreadyExists when the user already has an account with that name.
	Create(ctx context.Context, a *entity.Account) error
	ListByUser(ctx context.Context, userID uint) ([]entity.Account, error)
	// FindByID yields ErrAccountNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.Account, error)
	Delete(ctx context.Context, id uint) error
	// HasDividends reports whether any dividend references the account.
	HasDividends(ctx context.Context, id uint) (bool, error)
}

type accountUsecase struct {
	accounts AccountRepository
}

// NewAccountUsecase wires the account use cases.
func NewAccountUsecase(accounts AccountRepository) *accountUsecase {
	return &accountUsecase{accounts: accounts}
}

// Create adds an account for userID.
func (u *accountUsecase) Create(ctx context.Context, userID uint, name string) (*entity.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}
	a := &entity.Account{UserID: userID, Name: name}
	if err := u.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns userID's accounts ordered by name.
func (u *accountUsecase) List(ctx context.Context, userID uint) ([]entity.Account, error) {
	return u.accounts.ListByUser(ctx, userID)
}

// Delete removes an account owned by userID that no dividend references.
func (u *accountUsecase) Delete(ctx context.Context, userID, id uint) error {
	a, err := u.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a.UserID != userID {
		return ErrNotOwner
	}
	inUse, err := u.accounts.HasDividends(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrAccountInUse
	}
	return u.accounts.Delete(ctx, id)
}
