// Package adapters runs the report aggregation queries with gorm.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"dividend_backend/internal/feature/report/domain/entity"
	"dividend_backend/internal/feature/report/usecase"
)

type aggregateStore struct {
	db *gorm.DB
}

var _ usecase.AggregateStore = (*aggregateStore)(nil)

// NewAggregateStore returns an AggregateStore backed by db. SQLite and PostgreSQL are supported.
func NewAggregateStore(db *gorm.DB) *aggregateStore {
	return &aggregateStore{db: db}
}

type periodRow struct {
	Bucket string
	Total  decimal.Decimal
}

type categoryRow struct {
	Category string
	Total    decimal.Decimal
}

type receiptRow struct {
	ReceivedOn time.Time
}

// bucketExpr truncates the receipt date to a sortable "YYYY-MM" or "YYYY" string.
func (s *aggregateStore) bucketExpr(g entity.Granularity) string {
	if s.db.Dialector.Name() == "postgres" {
		if g == entity.Year {
			return "to_char(dividends.received_on, 'YYYY')"
		}
		return "to_char(dividends.received_on, 'YYYY-MM')"
	}
	if g == entity.Year {
		return "strftime('%Y', dividends.received_on)"
	}
	return "strftime('%Y-%m', dividends.received_on)"
}

func (s *aggregateStore) base(ctx context.Context, userID uint) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("dividends").
		Joins("JOIN currencies ON currencies.id = dividends.currency_id").
		Where("dividends.user_id = ?", userID)
}

func (s *aggregateStore) SumByPeriod(ctx context.Context, q usecase.PeriodQuery) ([]entity.PeriodTotal, error) {
	var rows []periodRow
	err := s.base(ctx, q.UserID).
		Select(s.bucketExpr(q.Granularity)+" AS bucket, SUM(dividends.payoff) AS total").
		Where("currencies.name = ?", q.Currency).
		Where("dividends.received_on >= ? AND dividends.received_on < ?", q.From, q.To).
		Group("bucket").
		Order("bucket").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sum by %s: %w", q.Granularity, err)
	}

	out := make([]entity.PeriodTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.PeriodTotal{Period: r.Bucket, Total: r.Total})
	}
	return out, nil
}

func (s *aggregateStore) SumByCategory(ctx context.Context, q usecase.CategoryQuery) ([]entity.CategoryTotal, error) {
	tx := s.base(ctx, q.UserID)

	var key string
	switch q.Dimension {
	case entity.ByTicker:
		tx = tx.Joins("JOIN companies ON companies.id = dividends.company_id")
		key = "companies.ticker"
	case entity.ByAccount:
		tx = tx.Joins("JOIN accounts ON accounts.id = dividends.account_id")
		key = "accounts.name"
	case entity.ByCurrency:
		key = "currencies.name"
	default:
		return nil, fmt.Errorf("unknown report dimension %q", q.Dimension)
	}

	if q.Currency != "" {
		tx = tx.Where("currencies.name = ?", q.Currency)
	}
	if q.From != nil {
		tx = tx.Where("dividends.received_on >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("dividends.received_on < ?", *q.To)
	}

	var rows []categoryRow
	err := tx.Select(key + " AS category, SUM(dividends.payoff) AS total").
		Group(key).
		Order(key).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sum by %s: %w", q.Dimension, err)
	}

	out := make([]entity.CategoryTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.CategoryTotal{Key: r.Category, Total: r.Total})
	}
	return out, nil
}

func (s *aggregateStore) EarliestReceipt(ctx context.Context, userID uint, currency string) (time.Time, bool, error) {
	tx := s.base(ctx, userID)
	if currency != "" {
		tx = tx.Where("currencies.name = ?", currency)
	}

	var rows []receiptRow
	err := tx.Select("dividends.received_on").
		Order("dividends.received_on ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return time.Time{}, false, fmt.Errorf("earliest receipt: %w", err)
	}
	if len(rows) == 0 {
		return time.Time{}, false, nil
	}
	return rows[0].ReceivedOn.UTC(), true, nil
}
