package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/report/domain/entity"
)

const (
	// DefaultCurrency is used when a request names none.
	DefaultCurrency = "USD"
	// DefaultYears is the window used when for_n_years is absent.
	DefaultYears = 3
	// MaxYears caps for_n_years. Zero means all-time.
	MaxYears = 50
)

// PeriodQuery selects one user's payoffs in one currency over [From, To).
type PeriodQuery struct {
	UserID      uint
	Currency    string
	From        time.Time
	To          time.Time
	Granularity entity.Granularity
}

// CategoryQuery selects one user's payoffs grouped by Dimension. An empty
// Currency and nil bounds leave that side unrestricted. To is exclusive.
type CategoryQuery struct {
	UserID    uint
	Currency  string
	Dimension entity.Dimension
	From      *time.Time
	To        *time.Time
}

// AggregateStore runs the grouped sum queries behind every report.
type AggregateStore interface {
	// SumByPeriod returns one total per non-empty bucket, ordered by period.
	SumByPeriod(ctx context.Context, q PeriodQuery) ([]entity.PeriodTotal, error)
	// SumByCategory returns one total per non-empty category.
	SumByCategory(ctx context.Context, q CategoryQuery) ([]entity.CategoryTotal, error)
	// EarliestReceipt returns the first receipt date of userID, in currency unless empty.
	// ok is false when the user has no such dividend.
	EarliestReceipt(ctx context.Context, userID uint, currency string) (t time.Time, ok bool, err error)
}

// Params are the report request parameters. Nil and zero fields take defaults.
type Params struct {
	Currency  string
	ForNYears *int
	Limit     int
	// Start and End, both inclusive dates, replace the year window of categorical reports.
	Start *time.Time
	End   *time.Time
}

type reportUsecase struct {
	store AggregateStore
	now   func() time.Time
}

// NewReportUsecase wires the report use cases.
func NewReportUsecase(store AggregateStore) *reportUsecase {
	return &reportUsecase{store: store, now: time.Now}
}

type window struct {
	currency string
	years    int
	limit    int
	start    *time.Time
	end      *time.Time
}

func (u *reportUsecase) today() time.Time {
	y, m, d := u.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalize(p Params) (window, error) {
	w := window{currency: strings.ToUpper(strings.TrimSpace(p.Currency)), years: DefaultYears, limit: p.Limit}
	if w.currency == "" {
		w.currency = DefaultCurrency
	}
	if money.GetCurrency(w.currency) == nil {
		return w, fmt.Errorf("%w: %q", ErrInvalidCurrency, p.Currency)
	}
	if p.ForNYears != nil {
		w.years = *p.ForNYears
	}
	if w.years < 0 || w.years > MaxYears {
		return w, ErrInvalidWindow
	}
	if w.limit < 0 {
		return w, ErrInvalidLimit
	}
	if p.Start != nil && p.End != nil && p.Start.After(*p.End) {
		return w, ErrInvalidDateRange
	}
	w.start, w.end = p.Start, p.End
	return w, nil
}

// yearRange is the span of calendar years covered by the window, ending with the current year.
// An all-time window starts at the year of the user's first dividend.
func (u *reportUsecase) yearRange(ctx context.Context, userID uint, currency string, years int) (int, int, error) {
	last := u.today().Year()
	if years > 0 {
		return last - years + 1, last, nil
	}
	earliest, ok, err := u.store.EarliestReceipt(ctx, userID, currency)
	if err != nil {
		return 0, 0, err
	}
	if !ok || earliest.Year() > last {
		return last, last, nil
	}
	return earliest.Year(), last, nil
}

func yearStart(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// LastYear reports the rolling twelve months ending with the current month.
func (u *reportUsecase) LastYear(ctx context.Context, userID uint, p Params) (*entity.Report, error) {
	w, err := normalize(p)
	if err != nil {
		return nil, err
	}
	today := u.today()
	from := time.Date(today.Year(), today.Month()-11, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 12, 0)

	totals, err := u.store.SumByPeriod(ctx, PeriodQuery{
		UserID: userID, Currency: w.currency, From: from, To: to, Granularity: entity.Month,
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 12)
	for i := range labels {
		labels[i] = from.AddDate(0, i, 0).Format("Jan 2006")
	}
	values := DenseMonths(totals, from, 12)
	return &entity.Report{
		Kind:   entity.Bar,
		Labels: labels,
		Series: []entity.Series{NewSeries("Dividends for the last year in "+w.currency, values)},
	}, nil
}

// Monthly reports one dense twelve-month series per calendar year in the window.
func (u *reportUsecase) Monthly(ctx context.Context, userID uint, p Params) (*entity.Report, error) {
	w, err := normalize(p)
	if err != nil {
		return nil, err
	}
	first, last, err := u.yearRange(ctx, userID, w.currency, w.years)
	if err != nil {
		return nil, err
	}

	totals, err := u.store.SumByPeriod(ctx, PeriodQuery{
		UserID: userID, Currency: w.currency, From: yearStart(first), To: yearStart(last + 1), Granularity: entity.Month,
	})
	if err != nil {
		return nil, err
	}
	return &entity.Report{
		Kind:   entity.Bar,
		Labels: MonthLabels(),
		Series: MonthlyByYear(totals, first, last, w.currency),
	}, nil
}

// Yearly reports one series with a bucket per calendar year in the window.
func (u *reportUsecase) Yearly(ctx context.Context, userID uint, p Params) (*entity.Report, error) {
	w, err := normalize(p)
	if err != nil {
		return nil, err
	}
	first, last, err := u.yearRange(ctx, userID, w.currency, w.years)
	if err != nil {
		return nil, err
	}

	totals, err := u.store.SumByPeriod(ctx, PeriodQuery{
		UserID: userID, Currency: w.currency, From: yearStart(first), To: yearStart(last + 1), Granularity: entity.Year,
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, last-first+1)
	for y := first; y <= last; y++ {
		labels = append(labels, YearKey(y))
	}
	return &entity.Report{
		Kind:   entity.Bar,
		Labels: labels,
		Series: []entity.Series{NewSeries("Dividends by year in "+w.currency, DenseYears(totals, first, last))},
	}, nil
}

// ByTicker reports totals per company, largest first.
func (u *reportUsecase) ByTicker(ctx context.Context, userID uint, p Params) (*entity.Report, error) {
	return u.categorical(ctx, userID, p, entity.ByTicker, entity.Doughnut, "Dividends by ticker in ")
}

// ByAccount reports totals per account, largest first.
func (u *reportUsecase) ByAccount(ctx context.Context, userID uint, p Params) (*entity.Report, error) {
	return u.categorical(ctx, userID, p, entity.ByAccount, entity.Doughnut, "Dividends by account in ")
}

// ByCurrency reports totals per currency across all currencies, largest first.
// Amounts in different currencies are not converted.
func (u *reportUsecase) ByCurrency(ctx context.Context, userID uint, p Params) (*entity.Report, error) {
	return u.categorical(ctx, userID, p, entity.ByCurrency, entity.PolarArea, "Dividends by currency")
}

func (u *reportUsecase) categorical(ctx context.Context, userID uint, p Params, dim entity.Dimension, kind entity.Kind, label string) (*entity.Report, error) {
	w, err := normalize(p)
	if err != nil {
		return nil, err
	}

	q := CategoryQuery{UserID: userID, Dimension: dim}
	if dim != entity.ByCurrency {
		q.Currency = w.currency
		label += w.currency
	}
	switch {
	case w.start != nil || w.end != nil:
		if w.start != nil {
			from := w.start.UTC()
			q.From = &from
		}
		if w.end != nil {
			to := w.end.UTC().AddDate(0, 0, 1)
			q.To = &to
		}
	case w.years > 0:
		last := u.today().Year()
		from, to := yearStart(last-w.years+1), yearStart(last+1)
		q.From, q.To = &from, &to
	}

	totals, err := u.store.SumByCategory(ctx, q)
	if err != nil {
		return nil, err
	}
	ranked := RankCategories(totals, w.limit)

	labels := make([]string, 0, len(ranked))
	values := make([]decimal.Decimal, 0, len(ranked))
	for _, t := range ranked {
		labels = append(labels, t.Key)
		values = append(values, t.Total)
	}
	return &entity.Report{Kind: kind, Labels: labels, Series: []entity.Series{NewSeries(label, values)}}, nil
}
