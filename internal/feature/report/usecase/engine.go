package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/report/domain/entity"
)

// payoffPlaces is the scale payoffs are stored with. SQLite returns SUM as a
// float, so bucket totals are rounded back to it and never to a coarser unit.
const payoffPlaces = 4

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthLabels returns the month axis labels in calendar order.
func MonthLabels() []string {
	out := make([]string, len(monthLabels))
	copy(out, monthLabels[:])
	return out
}

// MonthKey is the bucket key of the month t falls in.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// YearKey is the bucket key of year.
func YearKey(year int) string {
	return strconv.Itoa(year)
}

func byPeriod(totals []entity.PeriodTotal) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		m[t.Period] = m[t.Period].Add(t.Total)
	}
	return m
}

// DenseMonths walks n consecutive months starting with the month of from and
// returns the total of each, zero for months missing from totals.
func DenseMonths(totals []entity.PeriodTotal, from time.Time, n int) []decimal.Decimal {
	idx := byPeriod(totals)
	first := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = idx[MonthKey(first.AddDate(0, i, 0))]
	}
	return out
}

// DenseYears returns the total of every year from first to last inclusive, zero for missing years.
func DenseYears(totals []entity.PeriodTotal, first, last int) []decimal.Decimal {
	idx := byPeriod(totals)
	out := make([]decimal.Decimal, 0, last-first+1)
	for y := first; y <= last; y++ {
		out = append(out, idx[YearKey(y)])
	}
	return out
}

// MonthlyByYear partitions monthly totals into one twelve-month series per
// year from first to last, oldest year first.
func MonthlyByYear(totals []entity.PeriodTotal, first, last int, currency string) []entity.Series {
	out := make([]entity.Series, 0, last-first+1)
	for y := first; y <= last; y++ {
		values := DenseMonths(totals, time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), 12)
		out = append(out, NewSeries(fmt.Sprintf("Dividends for %d in %s", y, currency), values))
	}
	return out
}

// RankCategories orders totals by amount, largest first, breaking ties by key,
// and keeps the first limit entries. A limit of zero keeps all.
func RankCategories(totals []entity.CategoryTotal, limit int) []entity.CategoryTotal {
	out := make([]entity.CategoryTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// NewSeries labels the series, or marks it NoDataLabel when every value is zero.
func NewSeries(label string, values []decimal.Decimal) entity.Series {
	empty := true
	exact := make([]decimal.Decimal, len(values))
	for i, v := range values {
		exact[i] = v.Round(payoffPlaces)
		if !v.IsZero() {
			empty = false
		}
	}
	if empty {
		label = entity.NoDataLabel
	}
	return entity.Series{Label: label, Values: exact}
}
