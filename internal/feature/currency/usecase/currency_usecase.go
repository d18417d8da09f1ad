package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"

	"dividend_backend/internal/feature/currency/domain/entity"
)

// CurrencyRepository persists currencies.
type CurrencyRepository interface {
	// Create yields ErrCurrencyAlreadyExists on a duplicate name.
	Create(ctx context.Context, c *entity.Currency) error
	// List returns every currency ordered by name.
	List(ctx context.Context) ([]entity.Currency, error)
}

type currencyUsecase struct {
	currencies CurrencyRepository
}

// NewCurrencyUsecase wires the currency use cases.
func NewCurrencyUsecase(currencies CurrencyRepository) *currencyUsecase {
	return &currencyUsecase{currencies: currencies}
}

// NormalizeCode upper-cases code and checks it against the ISO 4217 table.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return code, nil
}

// Create registers a currency by ISO code.
func (u *currencyUsecase) Create(ctx context.Context, name string) (*entity.Currency, error) {
	code, err := NormalizeCode(name)
	if err != nil {
		return nil, err
	}
	c := &entity.Currency{Name: code}
	if err := u.currencies.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all registered currencies.
func (u *currencyUsecase) List(ctx context.Context) ([]entity.Currency, error) {
	return u.currencies.List(ctx)
}
