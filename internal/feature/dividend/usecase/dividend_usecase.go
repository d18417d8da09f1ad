package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

// payoffPlaces matches the precision of the payoff column.
const payoffPlaces = 4

// ListFilter narrows a user's dividend list. Zero values mean no restriction.
type ListFilter struct {
	UserID   uint
	Start    *time.Time
	End      *time.Time
	Currency string
	Limit    int
}

// DividendRepository persists dividends.
type DividendRepository interface {
	Create(ctx context.Context, d *entity.Dividend) error
	Update(ctx context.Context, d *entity.Dividend) error
	// Delete yields ErrDividendNotFound when nothing was removed.
	Delete(ctx context.Context, id uint) error
	// FindByID yields ErrDividendNotFound when missing.
	FindByID(ctx context.Context, id uint) (*entity.Dividend, error)
	// FindView yields ErrDividendNotFound when missing.
	FindView(ctx context.Context, id uint) (*entity.DividendView, error)
	// List returns matching dividends ordered by receipt date ascending.
	List(ctx context.Context, f ListFilter) ([]entity.DividendView, error)
}

// ReferenceLookup resolves the rows a dividend points at.
type ReferenceLookup interface {
	// CompanyIDByTicker yields ErrCompanyNotFound when missing.
	CompanyIDByTicker(ctx context.Context, ticker string) (uint, error)
	// CurrencyIDByName yields ErrCurrencyNotFound when missing.
	CurrencyIDByName(ctx context.Context, name string) (uint, error)
	// AccountOwner yields ErrAccountNotFound when missing.
	AccountOwner(ctx context.Context, accountID uint) (uint, error)
}

// ReportInvalidator drops cached reports after a user's dividends change.
type ReportInvalidator interface {
	InvalidateUser(ctx context.Context, userID uint) error
}

// DividendInput is a dividend as entered by the user.
type DividendInput struct {
	Ticker     string
	AccountID  uint
	Currency   string
	ReceivedOn time.Time
	Payoff     *decimal.Decimal
	Shares     *decimal.Decimal
	PerShare   *decimal.Decimal
}

type dividendUsecase struct {
	dividends   DividendRepository
	refs        ReferenceLookup
	invalidator ReportInvalidator
}

// NewDividendUsecase wires the dividend use cases. invalidator may be nil.
func NewDividendUsecase(dividends DividendRepository, refs ReferenceLookup, invalidator ReportInvalidator) *dividendUsecase {
	return &dividendUsecase{dividends: dividends, refs: refs, invalidator: invalidator}
}

// ResolvePayoff returns the canonical payoff for in. An explicit payoff wins;
// otherwise it is shares times per-share rate.
func ResolvePayoff(in DividendInput) (decimal.Decimal, error) {
	if in.Payoff != nil {
		if !in.Payoff.IsPositive() {
			return decimal.Zero, ErrInvalidPayoff
		}
		return in.Payoff.Round(payoffPlaces), nil
	}
	if in.Shares == nil || in.PerShare == nil {
		return decimal.Zero, ErrPayoffRequired
	}
	if !in.Shares.IsPositive() || !in.PerShare.IsPositive() {
		return decimal.Zero, ErrInvalidPayoff
	}
	return in.Shares.Mul(*in.PerShare).Round(payoffPlaces), nil
}

// ReceiptDate drops the time of day, keeping the calendar date in UTC.
func ReceiptDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// build validates in for userID and resolves its references.
func (u *dividendUsecase) build(ctx context.Context, userID uint, in DividendInput) (*entity.Dividend, error) {
	payoff, err := ResolvePayoff(in)
	if err != nil {
		return nil, err
	}

	owner, err := u.refs.AccountOwner(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrNotOwner
	}

	companyID, err := u.refs.CompanyIDByTicker(ctx, strings.ToUpper(strings.TrimSpace(in.Ticker)))
	if err != nil {
		return nil, err
	}
	currencyID, err := u.refs.CurrencyIDByName(ctx, strings.ToUpper(strings.TrimSpace(in.Currency)))
	if err != nil {
		return nil, err
	}

	return &entity.Dividend{
		UserID:     userID,
		CompanyID:  companyID,
		AccountID:  in.AccountID,
		CurrencyID: currencyID,
		ReceivedOn: ReceiptDate(in.ReceivedOn),
		Payoff:     payoff,
		Shares:     in.Shares,
		PerShare:   in.PerShare,
	}, nil
}

// Create records a dividend for userID into one of the user's accounts.
func (u *dividendUsecase) Create(ctx context.Context, userID uint, in DividendInput) (*entity.DividendView, error) {
	d, err := u.build(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	if err := u.dividends.Create(ctx, d); err != nil {
		return nil, err
	}
	u.invalidate(ctx, userID)
	return u.dividends.FindView(ctx, d.ID)
}

// Update replaces dividend id. Only its owner may change it.
func (u *dividendUsecase) Update(ctx context.Context, userID, id uint, in DividendInput) (*entity.DividendView, error) {
	existing, err := u.dividends.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotOwner
	}

	d, err := u.build(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	d.ID = existing.ID
	d.CreatedAt = existing.CreatedAt
	if err := u.dividends.Update(ctx, d); err != nil {
		return nil, err
	}
	u.invalidate(ctx, userID)
	return u.dividends.FindView(ctx, id)
}

// Delete removes dividend id. Only its owner may remove it.
func (u *dividendUsecase) Delete(ctx context.Context, userID, id uint) error {
	existing, err := u.dividends.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	if err := u.dividends.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx, userID)
	return nil
}

// List returns userID's dividends matching f, oldest first.
func (u *dividendUsecase) List(ctx context.Context, userID uint, f ListFilter) ([]entity.DividendView, error) {
	f.UserID = userID
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	if f.Start != nil && f.End != nil && f.Start.After(*f.End) {
		return nil, ErrInvalidDateRange
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	return u.dividends.List(ctx, f)
}

// invalidate drops cached reports. A failure only leaves reports stale until the cache TTL.
func (u *dividendUsecase) invalidate(ctx context.Context, userID uint) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("failed to invalidate cached reports", "user_id", userID, "error", err)
	}
}
