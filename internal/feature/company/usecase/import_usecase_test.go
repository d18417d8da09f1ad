package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/feature/company/domain/entity"
)

type mockCreator struct {
	CreateFromTickerFunc func(ticker string) (*entity.Company, error)
}

func (m *mockCreator) CreateFromTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	return m.CreateFromTickerFunc(ticker)
}

type mockRateLimiter struct {
	waits int
	err   error
}

func (m *mockRateLimiter) Allow() bool { return true }

func (m *mockRateLimiter) WaitIfNeeded(ctx context.Context) error {
	m.waits++
	return m.err
}

func TestImportUsecase_ImportAll(t *testing.T) {
	var asked []string
	creator := &mockCreator{CreateFromTickerFunc: func(ticker string) (*entity.Company, error) {
		asked = append(asked, ticker)
		switch ticker {
		case "MSFT":
			return nil, ErrCompanyAlreadyExists
		case "ZZZZ":
			return nil, ErrLookupNotFound
		default:
			return &entity.Company{Ticker: ticker}, nil
		}
	}}
	limiter := &mockRateLimiter{}

	sum, err := NewImportUsecase(creator, limiter).ImportAll(context.Background(), []string{"aapl", " msft", "zzzz", "not a ticker"})

	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, sum.Created)
	assert.Equal(t, []string{"MSFT"}, sum.Skipped)
	assert.Equal(t, []string{"ZZZZ", "not a ticker"}, sum.Failed)
	assert.Equal(t, []string{"AAPL", "MSFT", "ZZZZ"}, asked)
	assert.Equal(t, 3, limiter.waits, "invalid tickers must not use a provider slot")
}

func TestImportUsecase_ImportAll_StopsWhenCancelled(t *testing.T) {
	creator := &mockCreator{CreateFromTickerFunc: func(string) (*entity.Company, error) {
		t.Fatal("CreateFromTicker must not be called")
		return nil, nil
	}}
	limiter := &mockRateLimiter{err: context.Canceled}

	_, err := NewImportUsecase(creator, limiter).ImportAll(context.Background(), []string{"aapl"})

	assert.True(t, errors.Is(err, context.Canceled))
}
