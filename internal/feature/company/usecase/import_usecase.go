package usecase

import (
	"context"
	"errors"
	"log/slog"

	"dividend_backend/internal/feature/company/domain/entity"
	"dividend_backend/internal/shared/ratelimiter"
)

// CompanyCreator registers a company from its ticker.
type CompanyCreator interface {
	CreateFromTicker(ctx context.Context, ticker string) (*entity.Company, error)
}

// ImportSummary reports the outcome of a bulk import.
type ImportSummary struct {
	Created []string
	Skipped []string
	Failed  []string
}

// ImportUsecase registers many tickers in one run, pacing provider calls.
type ImportUsecase struct {
	companies   CompanyCreator
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewImportUsecase returns an ImportUsecase.
func NewImportUsecase(companies CompanyCreator, rateLimiter ratelimiter.RateLimiterInterface) *ImportUsecase {
	return &ImportUsecase{companies: companies, rateLimiter: rateLimiter}
}

// ImportAll registers every ticker. A failure on one ticker is logged and the run continues;
// only a cancelled context stops it early.
func (iu *ImportUsecase) ImportAll(ctx context.Context, tickers []string) (ImportSummary, error) {
	var sum ImportSummary
	for _, raw := range tickers {
		t, err := NormalizeTicker(raw)
		if err != nil {
			slog.Error("failed to import company", "ticker", raw, "error", err)
			sum.Failed = append(sum.Failed, raw)
			continue
		}
		if err := iu.rateLimiter.WaitIfNeeded(ctx); err != nil {
			return sum, err
		}
		_, err = iu.companies.CreateFromTicker(ctx, t)
		switch {
		case err == nil:
			sum.Created = append(sum.Created, t)
		case errors.Is(err, ErrCompanyAlreadyExists):
			sum.Skipped = append(sum.Skipped, t)
		default:
			slog.Error("failed to import company", "ticker", t, "error", err)
			sum.Failed = append(sum.Failed, t)
		}
	}
	return sum, nil
}
