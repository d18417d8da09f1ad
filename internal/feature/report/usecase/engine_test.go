package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"dividend_backend/internal/feature/report/domain/entity"
)

func TestDenseMonths_CrossesYearBoundary(t *testing.T) {
	totals := []entity.PeriodTotal{
		{Period: "2023-12", Total: decimal.NewFromInt(3)},
		{Period: "2024-02", Total: decimal.NewFromInt(4)},
	}

	got := DenseMonths(totals, time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC), 4)

	assert.Equal(t, []float64{0, 3, 0, 4}, floats(got))
}

func TestDenseYears(t *testing.T) {
	totals := []entity.PeriodTotal{{Period: "2022", Total: decimal.NewFromInt(8)}}
	assert.Equal(t, []float64{0, 8, 0}, floats(DenseYears(totals, 2021, 2023)))
}

func TestRankCategories(t *testing.T) {
	in := []entity.CategoryTotal{
		{Key: "b", Total: decimal.NewFromInt(1)},
		{Key: "c", Total: decimal.NewFromInt(5)},
		{Key: "a", Total: decimal.NewFromInt(1)},
	}

	got := RankCategories(in, 0)
	assert.Equal(t, "c", got[0].Key)
	assert.Equal(t, "a", got[1].Key)
	assert.Equal(t, "b", got[2].Key)
	assert.Equal(t, "b", in[0].Key, "input must not be reordered")

	assert.Len(t, RankCategories(in, 2), 2)
}

func TestNewSeries_KeepsPayoffPrecision(t *testing.T) {
	// Two 0.004 payments in one month: the bucket stays 0.008 rather than a rounded 0.01.
	values := []decimal.Decimal{decimal.NewFromFloat(0.004 + 0.004), decimal.RequireFromString("100.5")}

	s := NewSeries("Dividends for 2024 in USD", values)

	assert.Equal(t, "0.008", s.Values[0].String())
	assert.Equal(t, "100.5", s.Values[1].String())
	assert.True(t, s.Values[0].Add(s.Values[1]).Equal(decimal.RequireFromString("100.508")))
}

func TestNewSeries_NoData(t *testing.T) {
	s := NewSeries("Dividends for 2024 in USD", make([]decimal.Decimal, 12))
	assert.Equal(t, entity.NoDataLabel, s.Label)
	assert.Len(t, s.Values, 12)
}
