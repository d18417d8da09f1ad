package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"sort"
	"strings"

	"dividend_backend/internal/feature/company/domain/entity"
)

const (
	// DefaultHistoryLimit is the number of announcements returned when no limit is given.
	DefaultHistoryLimit = 10
	// MaxHistoryLimit caps the announcements returned per request.
	MaxHistoryLimit = 100

	defaultIconExt = ".png"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.\-]{1,8}$`)

// CompanyRepository persists companies.
type CompanyRepository interface {
	// Create yields ErrCompanyAlreadyExists when the ticker is taken.
	Create(ctx context.Context, c *entity.Company) error
	// FindByTicker yields ErrCompanyNotFound when missing.
	FindByTicker(ctx context.Context, ticker string) (*entity.Company, error)
	// List returns every company ordered by ticker.
	List(ctx context.Context) ([]entity.Company, error)
}

// MetadataResolver はマーケットデータプロバイダーでティッカーを照会します。
// 失敗時は ErrLookup* のいずれかを返します。
type MetadataResolver interface {
	Resolve(ctx context.Context, ticker string) (*entity.Metadata, error)
}

// IconFetcher downloads a company icon published by the metadata provider.
type IconFetcher interface {
	FetchIcon(ctx context.Context, iconURL string) (data []byte, contentType string, err error)
}

// IconStore keeps downloaded icons and returns a reference URL for each.
type IconStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, name string) error
}

// DividendHistorySource lists historical dividend announcements for a ticker.
type DividendHistorySource interface {
	DividendHistory(ctx context.Context, ticker string, limit int) ([]entity.DividendAnnouncement, error)
}

type companyUsecase struct {
	companies CompanyRepository
	resolver  MetadataResolver
	icons     IconFetcher
	store     IconStore
	primary   DividendHistorySource
	fallback  DividendHistorySource
}

// NewCompanyUsecase wires the company use cases. store and fallback may be nil:
// without a store icons are not downloaded, without a fallback only primary is asked.
func NewCompanyUsecase(
	companies CompanyRepository,
	resolver MetadataResolver,
	icons IconFetcher,
	store IconStore,
	primary DividendHistorySource,
	fallback DividendHistorySource,
) *companyUsecase {
	return &companyUsecase{
		companies: companies,
		resolver:  resolver,
		icons:     icons,
		store:     store,
		primary:   primary,
		fallback:  fallback,
	}
}

// NormalizeTicker trims and upper-cases ticker and validates its shape.
func NormalizeTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if !tickerPattern.MatchString(t) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTicker, ticker)
	}
	return t, nil
}

// IconFileName names the stored icon after the ticker, keeping the extension of iconURL.
func IconFileName(ticker, iconURL string) string {
	ext := defaultIconExt
	if u, err := url.Parse(iconURL); err == nil {
		if e := strings.ToLower(path.Ext(u.Path)); len(e) > 1 && len(e) <= 5 {
			ext = e
		}
	}
	return ticker + ext
}

// CreateFromTicker はプロバイダーのメタデータを使ってティッカーの会社を登録します。
// すべての処理が成功した場合のみ保存します。
func (u *companyUsecase) CreateFromTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return nil, err
	}

	if _, err := u.companies.FindByTicker(ctx, t); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrCompanyAlreadyExists, t)
	} else if !errors.Is(err, ErrCompanyNotFound) {
		return nil, err
	}

	md, err := u.resolver.Resolve(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", t, err)
	}

	c := &entity.Company{
		Name:        md.Name,
		Ticker:      t,
		Description: md.Description,
		IconURL:     md.IconURL,
	}
	if c.Name == "" {
		c.Name = t
	}

	var iconName string
	if md.IconURL != "" && u.store != nil && u.icons != nil {
		data, contentType, err := u.icons.FetchIcon(ctx, md.IconURL)
		if err != nil {
			return nil, fmt.Errorf("fetch icon for %s: %w", t, err)
		}
		iconName = IconFileName(t, md.IconURL)
		ref, err := u.store.Save(ctx, iconName, data, contentType)
		if err != nil {
			return nil, fmt.Errorf("store icon for %s: %w", t, err)
		}
		c.IconImage = ref
	}

	if err := u.companies.Create(ctx, c); err != nil {
		// A concurrent create of the same ticker already owns the icon file.
		if iconName != "" && !errors.Is(err, ErrCompanyAlreadyExists) {
			if derr := u.store.Delete(ctx, iconName); derr != nil {
				slog.Warn("failed to remove orphaned icon", "name", iconName, "error", derr)
			}
		}
		return nil, err
	}
	return c, nil
}

// Get returns the company registered under ticker.
func (u *companyUsecase) Get(ctx context.Context, ticker string) (*entity.Company, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return u.companies.FindByTicker(ctx, t)
}

// List returns every registered company.
func (u *companyUsecase) List(ctx context.Context) ([]entity.Company, error) {
	return u.companies.List(ctx)
}

// DividendHistory はティッカーの配当履歴を新しい順に最大 limit 件返します。
// primary が0件の場合のみ fallback に問い合わせます。
func (u *companyUsecase) DividendHistory(ctx context.Context, ticker string, limit int) ([]entity.DividendAnnouncement, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	items, err := u.primary.DividendHistory(ctx, t, limit)
	if err != nil && !errors.Is(err, ErrLookupNotFound) {
		return nil, err
	}
	if len(items) == 0 && u.fallback != nil {
		items, err = u.fallback.DividendHistory(ctx, t, limit)
		if err != nil && !errors.Is(err, ErrLookupNotFound) {
			return nil, err
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	if len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		items = []entity.DividendAnnouncement{}
	}
	return items, nil
}
