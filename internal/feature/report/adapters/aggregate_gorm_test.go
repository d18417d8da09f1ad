package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	accountentity "dividend_backend/internal/feature/account/domain/entity"
	companyentity "dividend_backend/internal/feature/company/domain/entity"
	currencyentity "dividend_backend/internal/feature/currency/domain/entity"
	dividendentity "dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/report/domain/entity"
	"dividend_backend/internal/feature/report/usecase"
	"dividend_backend/internal/platform/db/dbtest"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seed records dividends for user 1 (and one for user 2) across two companies,
// two accounts and two currencies.
func seed(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := dbtest.New(t)

	aapl := &companyentity.Company{Name: "Apple", Ticker: "AAPL"}
	ko := &companyentity.Company{Name: "Coca-Cola", Ticker: "KO"}
	require.NoError(t, gdb.Create(aapl).Error)
	require.NoError(t, gdb.Create(ko).Error)

	broker := &accountentity.Account{UserID: 1, Name: "Broker"}
	iis := &accountentity.Account{UserID: 1, Name: "IIS"}
	other := &accountentity.Account{UserID: 2, Name: "Broker"}
	require.NoError(t, gdb.Create(broker).Error)
	require.NoError(t, gdb.Create(iis).Error)
	require.NoError(t, gdb.Create(other).Error)

	var usd, rub currencyentity.Currency
	require.NoError(t, gdb.Where("name = ?", "USD").First(&usd).Error)
	require.NoError(t, gdb.Where("name = ?", "RUB").First(&rub).Error)

	add := func(user, company, account, currency uint, on time.Time, payoff string) {
		require.NoError(t, gdb.Create(&dividendentity.Dividend{
			UserID: user, CompanyID: company, AccountID: account, CurrencyID: currency,
			ReceivedOn: on, Payoff: decimal.RequireFromString(payoff),
		}).Error)
	}
	add(1, aapl.ID, broker.ID, usd.ID, day(2023, 1, 10), "100")
	add(1, aapl.ID, broker.ID, usd.ID, day(2023, 1, 25), "0.25")
	add(1, ko.ID, iis.ID, usd.ID, day(2023, 3, 1), "50")
	add(1, ko.ID, iis.ID, usd.ID, day(2024, 2, 1), "7.5")
	add(1, ko.ID, iis.ID, rub.ID, day(2022, 12, 31), "1000")
	add(2, aapl.ID, other.ID, usd.ID, day(2023, 1, 11), "999")
	return gdb
}

func TestAggregateStore_SumByPeriod_Month(t *testing.T) {
	store := NewAggregateStore(seed(t))

	got, err := store.SumByPeriod(context.Background(), usecase.PeriodQuery{
		UserID: 1, Currency: "USD", From: day(2023, 1, 1), To: day(2024, 1, 1), Granularity: entity.Month,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2023-01", got[0].Period)
	assert.True(t, got[0].Total.Equal(decimal.RequireFromString("100.25")), got[0].Total.String())
	assert.Equal(t, "2023-03", got[1].Period)
	assert.True(t, got[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestAggregateStore_SumByPeriod_Year(t *testing.T) {
	store := NewAggregateStore(seed(t))

	got, err := store.SumByPeriod(context.Background(), usecase.PeriodQuery{
		UserID: 1, Currency: "USD", From: day(2020, 1, 1), To: day(2025, 1, 1), Granularity: entity.Year,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2023", got[0].Period)
	assert.Equal(t, "2024", got[1].Period)
	assert.True(t, got[1].Total.Equal(decimal.RequireFromString("7.5")))
}

func TestAggregateStore_SumByCategory(t *testing.T) {
	store := NewAggregateStore(seed(t))
	ctx := context.Background()

	byTicker, err := store.SumByCategory(ctx, usecase.CategoryQuery{UserID: 1, Currency: "USD", Dimension: entity.ByTicker})
	require.NoError(t, err)
	require.Len(t, byTicker, 2)
	assert.Equal(t, "AAPL", byTicker[0].Key)
	assert.True(t, byTicker[0].Total.Equal(decimal.RequireFromString("100.25")))
	assert.Equal(t, "KO", byTicker[1].Key)
	assert.True(t, byTicker[1].Total.Equal(decimal.RequireFromString("57.5")))

	from, to := day(2024, 1, 1), day(2025, 1, 1)
	byAccount, err := store.SumByCategory(ctx, usecase.CategoryQuery{UserID: 1, Currency: "USD", Dimension: entity.ByAccount, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, "IIS", byAccount[0].Key)

	byCurrency, err := store.SumByCategory(ctx, usecase.CategoryQuery{UserID: 1, Dimension: entity.ByCurrency})
	require.NoError(t, err)
	require.Len(t, byCurrency, 2)
	assert.Equal(t, "RUB", byCurrency[0].Key)
	assert.True(t, byCurrency[0].Total.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "USD", byCurrency[1].Key)

	_, err = store.SumByCategory(ctx, usecase.CategoryQuery{UserID: 1, Dimension: "sector"})
	assert.Error(t, err)
}

func TestAggregateStore_EarliestReceipt(t *testing.T) {
	store := NewAggregateStore(seed(t))
	ctx := context.Background()

	first, ok, err := store.EarliestReceipt(ctx, 1, "USD")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, first.Equal(day(2023, 1, 10)), first.String())

	first, ok, err = store.EarliestReceipt(ctx, 1, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, first.Equal(day(2022, 12, 31)))

	_, ok, err = store.EarliestReceipt(ctx, 1, "EUR")
	require.NoError(t, err)
	assert.False(t, ok)
}
